package recipe

// Option is a single build-system option. An empty Value renders the option
// bare (a make goal or a lone flag), otherwise it renders as Key=Value with
// whatever prefix the build system wants.
type Option struct {
	Key   string
	Value string
}

// Options is an ordered set of build-system options. Insertion order is
// preserved so composed command lines stay stable and reviewable.
type Options struct {
	keys []string
	vals map[string]string
}

func NewOptions() *Options {
	return &Options{vals: make(map[string]string)}
}

// Set adds the option, or replaces its value in place if already present.
func (o *Options) Set(key, value string) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = value
}

// Append concatenates value onto the option's current value. Missing options
// start out empty, so Append on a fresh key behaves like Set.
func (o *Options) Append(key, value string) {
	o.Set(key, o.vals[key]+value)
}

func (o *Options) Get(key string) (string, bool) {
	v, ok := o.vals[key]
	return v, ok
}

func (o *Options) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Delete removes the option without disturbing the order of the rest.
func (o *Options) Delete(key string) {
	if _, ok := o.vals[key]; !ok {
		return
	}
	delete(o.vals, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

func (o *Options) Len() int {
	return len(o.keys)
}

// Keys returns the option keys in insertion order.
func (o *Options) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Pairs returns the options in insertion order.
func (o *Options) Pairs() []Option {
	pairs := make([]Option, 0, len(o.keys))
	for _, k := range o.keys {
		pairs = append(pairs, Option{Key: k, Value: o.vals[k]})
	}
	return pairs
}

// Args renders the options as command-line arguments. Each key gets the
// prefix; an option with a value renders as prefix+key+"="+value, a bare
// option as prefix+key.
func (o *Options) Args(prefix string) []string {
	args := make([]string, 0, len(o.keys))
	for _, k := range o.keys {
		if v := o.vals[k]; v != "" {
			args = append(args, prefix+k+"="+v)
		} else {
			args = append(args, prefix+k)
		}
	}
	return args
}
