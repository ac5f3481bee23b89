package internal

// Status is the three-valued control-flow signal threaded alongside a
// Field through every statement and expression evaluation, grounded on
// original_source/brewin_object.py's STATUS_PROCEED/STATUS_RETURN/
// STATUS_EXCEPTION constants (spec.md §4.7).
type Status int

const (
	StatusProceed Status = iota
	StatusReturn
	StatusException
)

// Outcome bundles a Status with the Field it carries: the return value for
// StatusReturn, the thrown message for StatusException, and for
// StatusProceed the value an expression or method call produced (a
// nothing-typed Field after a plain statement).
type Outcome struct {
	Status Status
	Field  Field
}

func proceed() Outcome {
	return Outcome{Status: StatusProceed, Field: NewField("", TypeNothing, Value{Type: TypeNothing})}
}

func returning(f Field) Outcome {
	return Outcome{Status: StatusReturn, Field: f}
}

func raising(f Field) Outcome {
	return Outcome{Status: StatusException, Field: f}
}
