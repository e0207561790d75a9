package profile

import "strconv"

// Value is a resolved value of a given kind
type Value struct {
	Kind   Kind
	Number float64
	Flag   bool
	Text   string
}

// NumberValue creates a Number value
func NumberValue(v float64) Value { return Value{Kind: Number, Number: v} }

// FlagValue creates a Flag value
func FlagValue(v bool) Value { return Value{Kind: Flag, Flag: v} }

// TextValue creates a Text value
func TextValue(v string) Value { return Value{Kind: Text, Text: v} }

// Interface returns the value matching the kind as float64, bool or string
func (v Value) Interface() interface{} {
	switch v.Kind {
	case Flag:
		return v.Flag
	case Text:
		return v.Text
	}
	return v.Number
}

func (v Value) String() string {
	switch v.Kind {
	case Flag:
		return strconv.FormatBool(v.Flag)
	case Text:
		return v.Text
	}
	return strconv.FormatFloat(v.Number, 'f', -1, 64)
}
