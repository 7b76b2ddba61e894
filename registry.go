package pluginx

import "reflect"

// serviceRegistry is a type-keyed store of plugin client stubs. Entries
// are inserted while a Client is being built and the registry is
// read-only afterwards, so lookups need no locking.
type serviceRegistry struct {
	services map[reflect.Type]any
}

func newServiceRegistry() *serviceRegistry {
	return &serviceRegistry{services: make(map[reflect.Type]any)}
}

// add stores v keyed by its dynamic type, replacing any previous entry
// of the same type.
func (r *serviceRegistry) add(v any) {
	r.services[reflect.TypeOf(v)] = v
}

// get returns the entry registered under t. Generated gRPC client stubs
// are interface values whose dynamic type is an unexported struct, so
// when t is an interface type the lookup falls back to finding an entry
// whose dynamic type implements it.
func (r *serviceRegistry) get(t reflect.Type) (any, bool) {
	if v, ok := r.services[t]; ok {
		return v, true
	}
	if t.Kind() == reflect.Interface {
		for dt, v := range r.services {
			if dt.Implements(t) {
				return v, true
			}
		}
	}
	return nil, false
}
