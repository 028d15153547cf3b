package tracker

// Payload is a collection of string pairs attached to an outgoing tracking
// event. Empty keys and values are not stored, so merging a payload into an
// event never produces null-like entries.
type Payload struct {
	pairs map[string]string
}

func NewPayload() *Payload {
	return &Payload{pairs: make(map[string]string)}
}

// Add stores a single pair. Pairs with an empty key or value are dropped.
func (p *Payload) Add(key string, value string) {
	if key == "" || value == "" {
		return
	}
	p.pairs[key] = value
}

// AddDict merges all pairs from the given map, subject to the same
// empty-key/value rule as Add.
func (p *Payload) AddDict(dict map[string]string) {
	for k, v := range dict {
		p.Add(k, v)
	}
}

// AddPayload merges all pairs from another payload. A nil other is a no-op.
func (p *Payload) AddPayload(other *Payload) {
	if other == nil {
		return
	}
	p.AddDict(other.pairs)
}

func (p *Payload) Get(key string) (string, bool) {
	v, ok := p.pairs[key]
	return v, ok
}

func (p *Payload) Len() int {
	return len(p.pairs)
}

// Map returns a copy of the underlying pairs.
func (p *Payload) Map() map[string]string {
	out := make(map[string]string, len(p.pairs))
	for k, v := range p.pairs {
		out[k] = v
	}
	return out
}
