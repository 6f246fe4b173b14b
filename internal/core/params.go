package core

import "strconv"

// Parameter is a single labelled value shown on the HUD or console.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values a simulation reports at one instant.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// IntParam formats an integer parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.Itoa(value)}
}

// BoolParam formats a boolean parameter as on/off.
func BoolParam(key, label string, value bool) Parameter {
	v := "off"
	if value {
		v = "on"
	}
	return Parameter{Key: key, Label: label, Value: v}
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}
