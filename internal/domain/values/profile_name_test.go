package values

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewProfileName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid name", "choc", "choc", false},
		{"trims whitespace", "  mocha  ", "mocha", false},
		{"empty string", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewProfileName(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, n.String())
			}
		})
	}
}

func Test_MustNewProfileName_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewProfileName(" ")
	})
}

func Test_ProfileName_Equals(t *testing.T) {
	a := MustNewProfileName("choc")
	b := MustNewProfileName("vanilla")
	c := MustNewProfileName("choc")

	assert.False(t, a.Equals(b))
	assert.True(t, a.Equals(c))
	assert.True(t, ProfileName{}.IsEmpty())
}

func Test_ProfileName_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(MustNewProfileName(`say "hi"`))
	require.NoError(t, err)
	assert.Equal(t, `"say \"hi\""`, string(data))
}
