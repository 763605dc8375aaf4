package parser

import "slices"

// Context holds the capability set a program is validated against: the
// action letters and sensor names a challenge supports. A Context is never
// modified after creation.
type Context struct {
	actions    []string
	sensors    []string
	actionSet  map[string]bool
	sensorSet  map[string]bool
	permissive bool
}

// NewContext returns a Context supporting the given actions and sensors.
// Duplicates are dropped; the first occurrence determines the order used in
// error messages.
func NewContext(actions, sensors []string) *Context {
	c := &Context{
		actionSet: map[string]bool{},
		sensorSet: map[string]bool{},
	}
	for _, a := range actions {
		if !c.actionSet[a] {
			c.actionSet[a] = true
			c.actions = append(c.actions, a)
		}
	}
	for _, s := range sensors {
		if !c.sensorSet[s] {
			c.sensorSet[s] = true
			c.sensors = append(c.sensors, s)
		}
	}
	return c
}

// Permissive returns a Context that accepts every action and sensor. It is
// meant for tooling that inspects programs outside of any challenge.
func Permissive() *Context {
	return &Context{permissive: true}
}

// Actions returns the supported actions.
func (c *Context) Actions() []string {
	return slices.Clone(c.actions)
}

// Sensors returns the supported sensors.
func (c *Context) Sensors() []string {
	return slices.Clone(c.sensors)
}

// SupportsAction reports whether action may be used.
func (c *Context) SupportsAction(action string) bool {
	return c.permissive || c.actionSet[action]
}

// SupportsSensor reports whether sensor may be referenced.
func (c *Context) SupportsSensor(sensor string) bool {
	return c.permissive || c.sensorSet[sensor]
}
