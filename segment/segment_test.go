package segment

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// mockFactory records engine constructions.
type mockFactory struct {
	mock.Mock
}

func (f *mockFactory) Build(tag language.Tag) (Engine, error) {
	args := f.Called(tag.String())
	eng, _ := args.Get(0).(Engine)
	return eng, args.Error(1)
}

type countingFactory struct {
	calls atomic.Int32
}

func (f *countingFactory) Build(tag language.Tag) (Engine, error) {
	f.calls.Add(1)
	return NewEngine(tag)
}

func requireLossless(t *testing.T, input string, tokens []string) {
	t.Helper()
	for i, tok := range tokens {
		require.NotEmpty(t, tok, "token %d of %q is empty", i, input)
	}
	require.Equal(t, input, strings.Join(tokens, ""), "reconstruction of %q", input)
}

var losslessInputs = []string{
	"a",
	"hello world",
	"Hello, world! How are you?",
	"  leading and trailing  ",
	"line one\nline two\r\nline three",
	"élève",
	"\U0001F468‍\U0001F469‍\U0001F467 family",
	"こんにちは",
	"日本語のテキストを分割します。",
	"カタカナとひらがなと漢字が混ざったRomaji文",
	"中文分词测试",
	"한국어 띄어쓰기 테스트",
	"Привет, мир",
	"don't stop 3.14 1,000",
	"tab\tseparated\tvalues",
}

func TestTokenize_LosslessAcrossLocales(t *testing.T) {
	seg := New()
	for _, locale := range Languages {
		tok := seg.Tokenizer(locale)
		for _, in := range losslessInputs {
			got, err := tok.Tokenize(in)
			require.NoError(t, err, "locale %s", locale)
			require.NotEmpty(t, got, "locale %s input %q", locale, in)
			requireLossless(t, in, got)
		}
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	got, err := New().Tokenizer("en").Tokenize("")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTokenize_EnglishKeepsSeparators(t *testing.T) {
	tok := New().Tokenizer("en")

	got, err := tok.Tokenize("hello world")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", " ", "world"}, got)

	got, err = tok.Tokenize("Hello, world!")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", ",", " ", "world", "!"}, got)
}

func TestTokenize_JapaneseWithoutWhitespace(t *testing.T) {
	tok := New().Tokenizer("ja")

	got, err := tok.Tokenize("こんにちは")
	require.NoError(t, err)
	assert.Equal(t, []string{"こんにちは"}, got)

	got, err = tok.Tokenize("日本語のテキスト")
	require.NoError(t, err)
	assert.Equal(t, []string{"日本語", "の", "テキスト"}, got)
}

func TestTokenize_UntailoredLocaleBreaksKana(t *testing.T) {
	got, err := New().Tokenizer("en").Tokenize("こんにちは")
	require.NoError(t, err)
	assert.Len(t, got, 5)
	requireLossless(t, "こんにちは", got)
}

func TestTokenize_DeterministicAcrossInstances(t *testing.T) {
	a := New().Tokenizer("ja")
	b := New().Tokenizer("ja")
	for _, in := range losslessInputs {
		ga, err := a.Tokenize(in)
		require.NoError(t, err)
		gb, err := b.Tokenize(in)
		require.NoError(t, err)
		assert.Equal(t, ga, gb, "input %q", in)
	}
}

func TestTokenize_RejectsInvalidUTF8(t *testing.T) {
	_, err := New().Tokenizer("en").Tokenize("bad\xff")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, errors.Is(err, ErrInvalidUTF8))
}

func TestSegmenter_BuildsEngineOncePerLocale(t *testing.T) {
	f := &countingFactory{}
	seg := New(WithFactory(f.Build))

	tok := seg.Tokenizer("ja")
	for i := 0; i < 3; i++ {
		_, err := tok.Tokenize("こんにちは")
		require.NoError(t, err)
	}
	_, err := seg.Tokenizer("ja").Tokenize("もう一度")
	require.NoError(t, err)
	_, err = seg.Tokenizer("ja-JP").Tokenize("地域付き")
	require.NoError(t, err)
	assert.EqualValues(t, 1, f.calls.Load())

	_, err = seg.Tokenizer("en").Tokenize("hello")
	require.NoError(t, err)
	assert.EqualValues(t, 2, f.calls.Load())
	assert.ElementsMatch(t, []string{"ja", "en"}, seg.Locales())
}

func TestSegmenter_ConcurrentFirstUseBuildsOnce(t *testing.T) {
	f := &countingFactory{}
	seg := New(WithFactory(f.Build))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := seg.Tokenizer("fr").Tokenize("bonjour le monde")
			assert.NoError(t, err)
			assert.Equal(t, "bonjour le monde", strings.Join(got, ""))
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, f.calls.Load())
}

func TestSegmenter_FactoryErrorIsMemoizedUntilReset(t *testing.T) {
	f := &mockFactory{}
	boom := errors.New("engine data missing")
	f.On("Build", "de").Return(nil, boom).Once()
	seg := New(WithFactory(f.Build))

	tok := seg.Tokenizer("de")
	for i := 0; i < 2; i++ {
		_, err := tok.Tokenize("Hallo Welt")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfiguration))
		assert.True(t, errors.Is(err, boom))
	}
	f.AssertNumberOfCalls(t, "Build", 1)

	seg.Reset()
	f.On("Build", "de").Return(&wordEngine{}, nil).Once()
	got, err := tok.Tokenize("Hallo Welt")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hallo", " ", "Welt"}, got)
	f.AssertNumberOfCalls(t, "Build", 2)
}

func TestSegmenter_LocaleErrors(t *testing.T) {
	seg := New()

	for _, locale := range []string{"sw", "be", "gl"} {
		_, err := seg.Tokenizer(locale).Tokenize("x")
		require.Error(t, err, locale)
		assert.True(t, errors.Is(err, ErrConfiguration), locale)
		assert.True(t, errors.Is(err, ErrUnsupportedLocale), locale)
	}

	_, err := seg.Tokenizer("not a locale!").Tokenize("x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.True(t, errors.Is(err, ErrInvalidLocale))

	// Rejected locales never reach the cache.
	assert.Empty(t, seg.Locales())
}

func TestTokenizer_FollowsCacheAcrossReset(t *testing.T) {
	f := &countingFactory{}
	seg := New(WithFactory(f.Build))
	tok := seg.Tokenizer("de")

	_, err := tok.Tokenize("Hallo")
	require.NoError(t, err)
	assert.Equal(t, []string{"de"}, seg.Locales())

	seg.Reset()
	assert.Empty(t, seg.Locales())

	got, err := tok.Tokenize("Hallo Welt")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hallo", " ", "Welt"}, got)
	assert.Equal(t, []string{"de"}, seg.Locales())
	assert.EqualValues(t, 2, f.calls.Load())

	// A tokenizer made after the Reset shares the rebuilt engine.
	_, err = seg.Tokenizer("de-AT").Tokenize("Servus")
	require.NoError(t, err)
	assert.EqualValues(t, 2, f.calls.Load())
}

func TestSegmenter_WithSupportedEmptyAcceptsAnyTag(t *testing.T) {
	seg := New(WithSupported())
	got, err := seg.Tokenizer("sw").Tokenize("habari yako")
	require.NoError(t, err)
	assert.Equal(t, []string{"habari", " ", "yako"}, got)
}

func TestCanonical(t *testing.T) {
	tags := supportedTags(Languages)
	cases := map[string]string{
		"ja":    "ja",
		"ja-JP": "ja",
		"en-GB": "en",
		"zh-TW": "zh-TW",
	}
	for in, want := range cases {
		got, err := Canonical(in, tags)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}

	for _, in := range []string{"sw", "be", "gl", "nl"} {
		_, err := Canonical(in, tags)
		assert.ErrorIs(t, err, ErrUnsupportedLocale, in)
	}
}

func TestDefaultTokenize_PinnedToDefaultLocale(t *testing.T) {
	got, err := Tokenize("こんにちは")
	require.NoError(t, err)
	assert.Equal(t, []string{"こんにちは"}, got)
	assert.Contains(t, Default().Locales(), DefaultLocale)

	// A tokenizer for another locale shares the cache but not the pin.
	en, err := NewTokenizer("en").Tokenize("こんにちは")
	require.NoError(t, err)
	assert.Len(t, en, 5)

	again, err := Tokenize("こんにちは")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestTerms(t *testing.T) {
	tokens, err := New().Tokenizer("en").Tokenize("Hello, big world! 42 times")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", "big", "world", "42", "times"}, Terms(tokens))

	tokens, err = New().Tokenizer("ja").Tokenize("日本語、テキスト。")
	require.NoError(t, err)
	assert.Equal(t, []string{"日本語", "テキスト"}, Terms(tokens))
}
