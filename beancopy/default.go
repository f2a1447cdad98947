package beancopy

import (
	"reflect"

	"go.uber.org/zap"

	"beanmapper/bean"
)

var defaultCopier = &Copier{registry: bean.Default(), logger: zap.NewNop()}

// BeanToBean copies src into dst with the default copier.
func BeanToBean(src, dst any, p *Policy) error { return defaultCopier.BeanToBean(src, dst, p) }

// BeanToMap copies src into dst with the default copier.
func BeanToMap(src any, dst Map, p *Policy) error { return defaultCopier.BeanToMap(src, dst, p) }

// MapToBean copies src into dst with the default copier.
func MapToBean(src Map, dst any, p *Policy) error { return defaultCopier.MapToBean(src, dst, p) }

// MapToMap copies src into dst with the default copier.
func MapToMap(src, dst Map, p *Policy) error { return defaultCopier.MapToMap(src, dst, p) }

// BeanToNewBean copies src into a new dstType with the default copier.
func BeanToNewBean(src any, dstType reflect.Type, p *Policy) (any, error) {
	return defaultCopier.BeanToNewBean(src, dstType, p)
}

// BeanToNewMap copies src into a new map with the default copier.
func BeanToNewMap(src any, p *Policy) (*OrderedMap, error) { return defaultCopier.BeanToNewMap(src, p) }

// MapToNewBean copies src into a new dstType with the default copier.
func MapToNewBean(src Map, dstType reflect.Type, p *Policy) (any, error) {
	return defaultCopier.MapToNewBean(src, dstType, p)
}

// MapToNewMap copies src into a new map with the default copier.
func MapToNewMap(src Map, p *Policy) (*OrderedMap, error) { return defaultCopier.MapToNewMap(src, p) }

// NewBean copies src into a new T, a struct type, with the default copier.
func NewBean[T any](src any, p *Policy) (*T, error) {
	return NewBeanWith[T](defaultCopier, src, p)
}

// NewBeanWith copies src into a new T with c.
func NewBeanWith[T any](c *Copier, src any, p *Policy) (*T, error) {
	dst, err := c.BeanToNewBean(src, reflect.TypeFor[T](), p)
	if err != nil {
		return nil, err
	}

	return dst.(*T), nil
}

// NewBeanFromMap copies src into a new T with the default copier.
func NewBeanFromMap[T any](src Map, p *Policy) (*T, error) {
	return NewBeanFromMapWith[T](defaultCopier, src, p)
}

// NewBeanFromMapWith copies src into a new T with c.
func NewBeanFromMapWith[T any](c *Copier, src Map, p *Policy) (*T, error) {
	dst, err := c.MapToNewBean(src, reflect.TypeFor[T](), p)
	if err != nil {
		return nil, err
	}

	return dst.(*T), nil
}
