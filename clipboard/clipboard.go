package clipboard

// Clipboard holds the single global clipboard value.
type Clipboard struct {
	data    string
	hasData bool
}

func New() *Clipboard {
	return &Clipboard{}
}

// Set replaces the clipboard value.
func (c *Clipboard) Set(data string) {
	c.data = data
	c.hasData = true
}

// Get returns the clipboard value and whether one is set.
func (c *Clipboard) Get() (string, bool) {
	return c.data, c.hasData
}

// Clear drops the clipboard value.
func (c *Clipboard) Clear() {
	c.data = ""
	c.hasData = false
}
