package sentry

// EventOptions holds optional settings for capturing events
type EventOptions struct {
	Tags        *Tags
	Extra       *Extra
	Level       *Level
	Fingerprint []string
}

// Tags is a chainable builder for event tags.
type Tags struct {
	tags map[string]string
}

func NewTags() *Tags {
	return &Tags{tags: make(map[string]string)}
}

// Set adds a tag; empty values are kept so grouping stays stable.
func (t *Tags) Set(key, value string) *Tags {
	t.tags[key] = value
	return t
}

func (t *Tags) ToMap() map[string]string {
	return t.tags
}

// Extra is a chainable builder for extra event data.
type Extra struct {
	data map[string]any
}

func NewExtra() *Extra {
	return &Extra{data: make(map[string]any)}
}

func (e *Extra) Set(key string, value any) *Extra {
	e.data[key] = value
	return e
}

func (e *Extra) ToMap() map[string]any {
	return e.data
}
