package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func environ(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestFromEnvironPrecedence(t *testing.T) {
	tag, ok := FromEnviron(environ(map[string]string{
		"NAME2CC_LANG": "ru",
		"LC_ALL":       "pl_PL.UTF-8",
		"LANG":         "tr_TR.UTF-8",
	}))
	require.True(t, ok)
	assert.Equal(t, language.Russian, tag, "NAME2CC_LANG wins over LC_ALL and LANG")

	tag, ok = FromEnviron(environ(map[string]string{
		"LC_ALL": "pl_PL.UTF-8",
		"LANG":   "tr_TR.UTF-8",
	}))
	require.True(t, ok)
	assert.Equal(t, language.MustParse("pl-PL"), tag)

	tag, ok = FromEnviron(environ(map[string]string{
		"LANG": "uk_UA.UTF-8",
	}))
	require.True(t, ok)
	assert.Equal(t, language.MustParse("uk-UA"), tag)
}

func TestFromEnvironSkipsPosixLocales(t *testing.T) {
	_, ok := FromEnviron(environ(map[string]string{"LANG": "C"}))
	assert.False(t, ok)

	_, ok = FromEnviron(environ(map[string]string{"LC_ALL": "POSIX"}))
	assert.False(t, ok)

	// C in a higher-priority var does not shadow a usable lower one.
	tag, ok := FromEnviron(environ(map[string]string{
		"LC_ALL": "C",
		"LANG":   "ru_RU.UTF-8",
	}))
	require.True(t, ok)
	assert.Equal(t, language.MustParse("ru-RU"), tag)
}

func TestFromEnvironEmpty(t *testing.T) {
	_, ok := FromEnviron(environ(nil))
	assert.False(t, ok)
}

func TestParsePOSIX(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  language.Tag
		ok    bool
	}{
		{"plain tag", "ru", language.Russian, true},
		{"posix with encoding", "en_US.UTF-8", language.MustParse("en-US"), true},
		{"posix with modifier", "nn_NO@nynorsk", language.MustParse("nn-NO"), true},
		{"bcp47 with script", "zh-Hant-TW", language.MustParse("zh-Hant-TW"), true},
		{"underscored script", "zh_TW", language.MustParse("zh-TW"), true},
		{"garbage", "!!!", language.Und, false},
		{"empty", "", language.Und, false},
		{"bare encoding", ".UTF-8", language.Und, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tag, ok := ParsePOSIX(tc.value)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, tag)
			}
		})
	}
}
