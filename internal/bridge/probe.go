package bridge

import "sort"

// Report describes what a compositor advertises
type Report struct {
	Globals         []Global `yaml:"globals"`
	HasSeat         bool     `yaml:"has_seat"`
	HasIdleNotifier bool     `yaml:"has_idle_notifier"`
}

// Missing returns the error a run would fail with, or nil if both
// capabilities are advertised
func (r *Report) Missing() error {
	if !r.HasSeat {
		return &MissingCapabilityError{Capability: SeatInterface}
	}
	if !r.HasIdleNotifier {
		return &MissingCapabilityError{Capability: IdleNotifierInterface}
	}
	return nil
}

type collector struct {
	report *Report
}

func (c *collector) Global(g Global) {
	c.report.Globals = append(c.report.Globals, g)
	switch g.Interface {
	case SeatInterface:
		c.report.HasSeat = true
	case IdleNotifierInterface:
		c.report.HasIdleNotifier = true
	}
}

func (c *collector) GlobalRemove(name uint32) {
	kept := c.report.Globals[:0]
	for _, g := range c.report.Globals {
		if g.Name != name {
			kept = append(kept, g)
		}
	}
	c.report.Globals = kept
}

// Probe runs one discovery round without binding anything and closes the
// connection afterwards
func Probe(dial Dialer) (*Report, error) {
	comp, err := dial()
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	cleanup := &teardown{}
	defer cleanup.run()
	cleanup.push("connection", comp.Close)

	report := &Report{}
	if err := comp.Discover(&collector{report: report}); err != nil {
		return nil, &DispatchError{Op: "discover", Err: err}
	}

	sort.Slice(report.Globals, func(i, j int) bool {
		return report.Globals[i].Name < report.Globals[j].Name
	})
	return report, nil
}
