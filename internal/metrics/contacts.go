package metrics

import "github.com/san-kum/gravsim/internal/dynamo"

// Contacts counts resolved overlaps across a run.
type Contacts struct {
	count      int
	maxOverlap float64
}

func NewContacts() *Contacts { return &Contacts{} }

func (c *Contacts) Name() string { return "contacts" }

func (c *Contacts) Observe(w *dynamo.World, contacts []dynamo.Contact, t float64) {
	c.count += len(contacts)
	for _, ct := range contacts {
		if ct.Overlap > c.maxOverlap {
			c.maxOverlap = ct.Overlap
		}
	}
}

func (c *Contacts) Value() float64      { return float64(c.count) }
func (c *Contacts) MaxOverlap() float64 { return c.maxOverlap }
func (c *Contacts) Reset()              { c.count, c.maxOverlap = 0, 0 }

// Defaults returns the metrics attached to every run.
func Defaults(g, softening float64) []dynamo.Metric {
	return []dynamo.Metric{
		NewEnergyDrift(g, softening),
		NewMomentumDrift(),
		NewContacts(),
	}
}
