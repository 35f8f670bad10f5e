package models

import "testing"

func TestStep_Valid(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want bool
	}{
		{"name step", StepName, true},
		{"goals step", StepGoals, true},
		{"submitted", StepSubmitted, true},
		{"zero", Step(0), false},
		{"past submitted", StepSubmitted + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.step.Valid(); got != tt.want {
				t.Errorf("Step(%d).Valid() = %v, want %v", tt.step, got, tt.want)
			}
		})
	}
}

func TestStep_Editable(t *testing.T) {
	for s := StepName; s <= StepGoals; s++ {
		if !s.Editable() {
			t.Errorf("Step %s should be editable", s)
		}
	}
	if StepSubmitted.Editable() {
		t.Error("StepSubmitted should not be editable")
	}
}

func TestStep_String(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{StepName, "name"},
		{StepSkills, "skills"},
		{StepInterests, "interests"},
		{StepGoals, "goals"},
		{StepSubmitted, "submitted"},
		{Step(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.step.String(); got != tt.want {
			t.Errorf("Step(%d).String() = %q, want %q", tt.step, got, tt.want)
		}
	}
}
