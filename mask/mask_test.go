package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/filescom/mask"
)

type network struct {
	MaxRetries int    `yaml:"max_retries"`
	Token      string `yaml:"token" mask:"true"`
}

type settings struct {
	Enable   bool     `yaml:"enable"`
	BaseURL  string   `yaml:"base_url"`
	APIKey   string   `yaml:"api_key"  mask:"true"`
	Password string   `yaml:"password" mask:"true"`
	Network  network  `yaml:"network"`
	Extra    *network `yaml:"extra"`
	Ignored  string   `yaml:"-"`
	Label    string   `json:"label"`
	hidden   string
}

func TestStructToOrdMap(t *testing.T) {
	s := settings{
		Enable:   true,
		BaseURL:  "https://acme.files.com",
		APIKey:   "0123456789abcdef",
		Password: "",
		Network:  network{MaxRetries: 3, Token: "short"},
		Ignored:  "x",
		Label:    "prod",
		hidden:   "y",
	}

	om := mask.StructToOrdMap(&s)
	require.NotNil(t, om)

	keys := make([]string, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, []string{
		"enable", "base_url", "api_key", "password",
		"network.max_retries", "network.token", "extra", "label",
	}, keys)

	tests := []struct {
		key  string
		want any
	}{
		{key: "enable", want: true},
		{key: "base_url", want: "https://acme.files.com"},
		{key: "api_key", want: "****cdef"},
		{key: "password", want: ""},
		{key: "network.max_retries", want: 3},
		{key: "network.token", want: mask.Placeholder},
		{key: "extra", want: nil},
		{key: "label", want: "prod"},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			v, ok := om.Get(tc.key)
			require.True(t, ok)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestStructToOrdMapNil(t *testing.T) {
	assert.Nil(t, mask.StructToOrdMap(nil))
}

func TestStructToOrdMapMaskedNonString(t *testing.T) {
	type secretNumbers struct {
		Pin   int            `mask:"true"`
		Codes []string       `mask:"true"`
		Attrs map[string]int `mask:"true"`
		Ptr   *string        `mask:"true"`
	}
	pin := "1234"

	om := mask.StructToOrdMap(secretNumbers{Pin: 42, Codes: []string{"a"}, Ptr: &pin})

	v, _ := om.Get("Pin")
	assert.Equal(t, mask.Placeholder, v)
	v, _ = om.Get("Codes")
	assert.Equal(t, mask.Placeholder, v)
	v, _ = om.Get("Attrs")
	assert.Nil(t, v)
	v, _ = om.Get("Ptr")
	assert.Equal(t, mask.Placeholder, v)
}
