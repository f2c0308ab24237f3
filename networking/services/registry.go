package services

const EntropyService = "Entropy"

type Registry struct {
	Services map[string]interface{}
}

func NewRegistry() *Registry {
	return &Registry{Services: map[string]interface{}{}}
}

func (r *Registry) AddService(name string, service interface{}) {
	r.Services[name] = service
}

// NewEntropyRegistry holds the entropy service only. Clients need the same
// service types registered to decode replies, so they may pass a nil source.
func NewEntropyRegistry(entropy *Entropy) *Registry {
	r := NewRegistry()
	if entropy == nil {
		entropy = &Entropy{}
	}
	r.AddService(EntropyService, entropy)
	return r
}
