package form

import "sync"

// Registry tracks the open forms of all browser sessions, keyed by session
// id plus form scope ("new", or "edit:<assetID>"). Replacing or discarding a
// form closes the old one so its previews are released.
type Registry struct {
	mu    sync.Mutex
	forms map[string]*Form
}

func NewRegistry() *Registry {
	return &Registry{forms: make(map[string]*Form)}
}

func (r *Registry) Get(key string) (*Form, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.forms[key]
	return f, ok
}

func (r *Registry) Put(key string, f *Form) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.forms[key]; ok && old != f {
		old.Close()
	}
	r.forms[key] = f
}

// Discard closes and removes the form, if any.
func (r *Registry) Discard(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.forms[key]; ok {
		f.Close()
		delete(r.forms, key)
	}
}
