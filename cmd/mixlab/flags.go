package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/spboyer/mixlab/internal/mix"
)

// ageValue is a pflag.Value restricted to the curing ages on offer.
type ageValue int

func (a *ageValue) String() string { return strconv.Itoa(int(*a)) }

func (a *ageValue) Set(s string) error {
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !mix.IsAgeOption(days) {
		return fmt.Errorf("must be one of %s", ageList())
	}
	*a = ageValue(days)
	return nil
}

func (a *ageValue) Type() string { return "days" }

func ageList() string {
	parts := make([]string, len(mix.AgeOptions))
	for i, d := range mix.AgeOptions {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ")
}

// mixFlags binds one flag per dosage field plus --age.
type mixFlags struct {
	dosages map[string]*float64
	age     ageValue
}

func addMixFlags(fs *pflag.FlagSet) *mixFlags {
	f := &mixFlags{dosages: make(map[string]*float64), age: ageValue(mix.DefaultAge)}
	for _, field := range mix.DosageFields() {
		name := flagName(field.Name)
		f.dosages[field.Name] = fs.Float64(name, mix.DefaultDosage,
			fmt.Sprintf("%s dosage (%s)", field.Label, field.Unit))
	}
	fs.Var(&f.age, "age", "Curing age in days ("+ageList()+")")
	return f
}

// flagName turns a feature name such as FlyAsh into fly-ash.
func flagName(feature string) string {
	var b strings.Builder
	for i, r := range feature {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// inputs returns the mix described by the flags with the hidden aggregate
// constants applied. Flags left unset fall back to defaults, which come
// from the form so .mixlab.yaml can change them.
func (f *mixFlags) inputs(fs *pflag.FlagSet, form mix.FormSpec) (mix.MixInputs, error) {
	in := form.Defaults()
	for _, field := range mix.DosageFields() {
		if !fs.Changed(flagName(field.Name)) {
			continue
		}
		if err := in.Set(field.Name, *f.dosages[field.Name]); err != nil {
			return mix.MixInputs{}, err
		}
	}
	if fs.Changed("age") {
		in.Age = int(f.age)
	}
	return in.WithHiddenDefaults(), nil
}
