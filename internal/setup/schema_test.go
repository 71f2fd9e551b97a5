package setup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaSource_ListsCatalog(t *testing.T) {
	src := SchemaSource()
	assert.True(t, strings.HasPrefix(src, "#Setup: {"))
	assert.Contains(t, src, `tire_compound: "Soft" | "Medium" | "Hard"`)
	assert.Contains(t, src, "age: int & >=16 & <=60")
	assert.Contains(t, src, "tire_pressure: int & >=10 & <=25")
	assert.Contains(t, src, `wing_angle: "0–5°" | "6–10°" | "11–15°" | "16–20°"`)
}

func TestValidateWithSchema_Valid(t *testing.T) {
	require.NoError(t, ValidateWithSchema(validRecord()))
}

func TestValidateWithSchema_RejectsUnknownLabel(t *testing.T) {
	r := validRecord()
	r.Wheels.TireCompound = "Wet"

	err := ValidateWithSchema(r)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Fields)
	assert.Contains(t, err.Error(), "tire_compound")
}

func TestValidateWithSchema_RejectsOutOfRange(t *testing.T) {
	r := validRecord()
	r.Driver.Age = 70

	err := ValidateWithSchema(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age")
}

func TestValidateWithSchema_RejectsBadName(t *testing.T) {
	r := validRecord()
	r.Driver.Name = "1x"

	err := ValidateWithSchema(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}
