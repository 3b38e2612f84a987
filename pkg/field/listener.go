package field

// Value is reported to listeners after every applied edit.
type Value struct {
	Complete        bool
	Extracted       string
	Formatted       string
	TailPlaceholder string
}

// ValueListener receives the value of a field after every applied edit.
type ValueListener interface {
	OnValue(Value)
}

// ValueFunc adapts a function to ValueListener.
type ValueFunc func(Value)

func (fn ValueFunc) OnValue(v Value) { fn(v) }

// FromFilledFunc adapts the older (complete, extracted) callback shape.
func FromFilledFunc(fn func(complete bool, extracted string)) ValueListener {
	return ValueFunc(func(v Value) {
		fn(v.Complete, v.Extracted)
	})
}

// FromTextChangedFunc adapts the older (complete, extracted, formatted)
// callback shape.
func FromTextChangedFunc(fn func(complete bool, extracted, formatted string)) ValueListener {
	return ValueFunc(func(v Value) {
		fn(v.Complete, v.Extracted, v.Formatted)
	})
}

// Host receives the formatted text and caret the field computed.
type Host interface {
	Display(text string, caret int)
}

// HostFunc adapts a function to Host.
type HostFunc func(text string, caret int)

func (fn HostFunc) Display(text string, caret int) { fn(text, caret) }
