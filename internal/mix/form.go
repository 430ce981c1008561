package mix

// Field describes one editable dosage input.
type Field struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Unit    string  `json:"unit"`
	Default float64 `json:"default"`
	Step    float64 `json:"step"`
	Min     float64 `json:"min"`
}

// FormSpec is everything a collector needs to render the mix form.
type FormSpec struct {
	Fields     []Field            `json:"fields"`
	AgeOptions []int              `json:"ageOptions"`
	DefaultAge int                `json:"defaultAge"`
	Hidden     map[string]float64 `json:"hidden"`
}

var dosageOrder = []struct {
	name  string
	label string
}{
	{FeatureCement, "Cement"},
	{FeatureSlag, "Slag"},
	{FeatureFlyAsh, "Fly ash"},
	{FeatureSuperplasticizer, "Superplasticizer"},
	{FeatureWater, "Water"},
}

// DosageFields returns the five editable dosage fields with the stock
// default and step.
func DosageFields() []Field {
	return NewFormSpec(DefaultDosage, DosageStep).Fields
}

// NewFormSpec builds the form definition. Non-positive defaultDosage or step
// fall back to the stock values.
func NewFormSpec(defaultDosage, step float64) FormSpec {
	if defaultDosage <= 0 {
		defaultDosage = DefaultDosage
	}
	if step <= 0 {
		step = DosageStep
	}
	fields := make([]Field, 0, len(dosageOrder))
	for _, d := range dosageOrder {
		fields = append(fields, Field{
			Name:    d.name,
			Label:   d.label,
			Unit:    "kg/m³",
			Default: defaultDosage,
			Step:    step,
			Min:     DosageMin,
		})
	}
	ages := make([]int, len(AgeOptions))
	copy(ages, AgeOptions)
	return FormSpec{
		Fields:     fields,
		AgeOptions: ages,
		DefaultAge: DefaultAge,
		Hidden: map[string]float64{
			FeatureCoarseAggregate: CoarseAggregateKg,
			FeatureFineAggregate:   FineAggregateKg,
		},
	}
}

// Defaults returns the inputs matching the form's default values.
func (f FormSpec) Defaults() MixInputs {
	in := DefaultInputs()
	for _, fld := range f.Fields {
		_ = in.Set(fld.Name, fld.Default)
	}
	in.Age = f.DefaultAge
	return in
}
