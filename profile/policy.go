package profile

import (
	"fmt"

	"beanmapper/beancopy"
	beanerrors "beanmapper/errors"
	"beanmapper/internal/common"
	"beanmapper/internal/match"
	"beanmapper/primitive"
)

// registrars map converter types onto policy builder methods.
var registrars = map[string]func(*beancopy.Policy, string, ...string) *beancopy.Policy{
	"date":      (*beancopy.Policy).DateConverter,
	"sql_date":  (*beancopy.Policy).SQLDateConverter,
	"time":      (*beancopy.Policy).TimeConverter,
	"timestamp": (*beancopy.Policy).TimestampConverter,
	"number":    (*beancopy.Policy).NumberConverter,
}

// Policy builds the policy of the profile called name. An unknown name fails
// with errors.ErrUnknownKey; an invalid profile with errors.ErrInvalidArgument.
func (f *File) Policy(name string) (*beancopy.Policy, error) {
	p, ok := f.Lookup(name)
	if !ok {
		return nil, beanerrors.NewUnknownKeyError("profile file", name, match.Suggest(name, f.Names()))
	}

	return p.Policy()
}

// Policy builds the policy the profile declares. Empty delimiters take the
// beancopy defaults.
func (p *Profile) Policy() (*beancopy.Policy, error) {
	q := *p
	q.applyDefaults()
	p = &q

	diags := Validate(&File{Version: CurrentVersion, Profiles: []Profile{q}})
	if err := diags.Error(); err != nil {
		return nil, beanerrors.NewInvalidArgumentError("profile", err.Error())
	}

	beanDelim, _ := common.First([]rune(p.BeanDelimiter))
	mapDelim, _ := common.First([]rune(p.MapDelimiter))

	pol := beancopy.NewPolicy().
		Include(p.Include...).
		Exclude(p.Exclude...).
		Prefix(p.Prefix).
		BeanDelimiter(beanDelim).
		MapDelimiter(mapDelim)

	if p.ExcludeNull {
		pol.ExcludeNull()
	}
	if p.ExcludeBlank {
		pol.ExcludeBlank()
	}

	if len(p.Coercions) > 0 {
		var allowed primitive.CategoryEnum
		for _, name := range p.Coercions {
			c, _ := primitive.ParseCategory(name)
			allowed |= c
		}
		pol.Coercions(allowed)
	}

	for _, c := range p.Converters {
		registrars[c.Type](pol, c.Pattern, c.Properties...)
	}

	if err := pol.Err(); err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}

	return pol, nil
}
