package summary

import "roofline/models"

// Condition gates a field's visibility on another field's value.
type Condition struct {
	FieldID string
	Equals  string
}

// Field is one entry in the ordered form schema. Prefix and Suffix wrap
// the value in the rendered summary; Required fields must carry a value
// at submission time (only while visible).
type Field struct {
	ID       string
	Label    string
	Prefix   string
	Suffix   string
	Required bool
	ShowIf   *Condition
}

// Schema is the ordered field list shared by validation and rendering.
type Schema []Field

// Visible reports whether the field applies given the submitted data.
func (f Field) Visible(data map[string]string) bool {
	if f.ShowIf == nil {
		return true
	}
	return data[f.ShowIf.FieldID] == f.ShowIf.Equals
}

// AppointmentSchema is the roofing inspection form in clipboard order.
func AppointmentSchema() Schema {
	return Schema{
		{ID: "customerName", Label: "Customer name", Prefix: "Name: ", Suffix: "\n", Required: true},
		{ID: "phone", Label: "Phone number", Prefix: "Phone: ", Suffix: "\n", Required: true},
		{ID: "address", Label: "Street address", Prefix: "Address: ", Suffix: "\n", Required: true},
		{ID: "city", Label: "City", Prefix: "City: ", Suffix: "\n", Required: true},
		{ID: models.FieldState, Label: "State", Prefix: "State: ", Suffix: "\n", Required: true},
		{ID: models.FieldAppointmentDate, Label: "Appointment date", Prefix: "Date: ", Suffix: "\n", Required: true},
		{ID: models.FieldAppointmentTime, Label: "Appointment time", Prefix: "Time: ", Suffix: "\n", Required: true},
		{ID: "roofAge", Label: "Roof age", Prefix: "Roof age: ", Suffix: " years\n", Required: true},
		{ID: "stormDamage", Label: "Storm damage", Prefix: "Storm damage: ", Suffix: "\n", Required: true},
		{ID: "insuranceCarrier", Label: "Insurance carrier", Prefix: "Carrier: ", Suffix: "\n",
			ShowIf: &Condition{FieldID: "hasInsurance", Equals: "yes"}},
		{ID: "spouse", Label: "Spouse present", Prefix: "Spouse: ", Suffix: "\n"},
		{ID: "notes", Label: "Notes", Prefix: "Notes: ", Suffix: "\n"},
	}
}
