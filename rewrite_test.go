package cfgattrs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func rewriteAttr(t *testing.T, attr string) []string {
	t.Helper()
	entries, err := parseAttr("", attr)
	require.NoError(t, err)
	return rewrite(entries)
}

func TestRewritePassthrough(t *testing.T) {
	attrs := rewriteAttr(t, `{ #[derive(Debug)] /// doc
}`)
	require.Equal(t, []string{"#[derive(Debug)]", "/// doc"}, attrs)
}

func TestRewriteSingleDocLine(t *testing.T) {
	attrs := rewriteAttr(t, `{ #[configure(debug_assertions, /// text
)] }`)
	require.Equal(t, []string{`#[cfg_attr(debug_assertions, doc = " text")]`}, attrs)
}

func TestRewriteMultiLineDoc(t *testing.T) {
	attrs := rewriteAttr(t, `{ #[configure(debug_assertions,
	///
	/// Hello! These are docs that only appear when
	/// debug assertions are active.
)] }`)
	require.Equal(t, []string{
		`#[cfg_attr(debug_assertions, doc = "", doc = " Hello! These are docs that only appear when", doc = " debug assertions are active.")]`,
	}, attrs)
}

func TestRewriteMixedBody(t *testing.T) {
	attrs := rewriteAttr(t, `{ #[configure(feature = "magic", #[sparkles] #[crackles])] }`)
	require.Equal(t, []string{`#[cfg_attr(feature = "magic", sparkles, crackles)]`}, attrs)
}

func TestRewriteEmptyConfigureBody(t *testing.T) {
	attrs := rewriteAttr(t, `{ #[configure(feature = "x",)] }`)
	require.Equal(t, []string{`#[cfg_attr(feature = "x",)]`}, attrs)
}

func TestRewritePreservesEntryOrder(t *testing.T) {
	attrs := rewriteAttr(t, `{
	#[first]
	#[configure(test, #[second])]
	#[third]
}`)
	require.Equal(t, []string{"#[first]", "#[cfg_attr(test, second)]", "#[third]"}, attrs)
}

func TestRewritePredicateVerbatim(t *testing.T) {
	attrs := rewriteAttr(t, `{ #[configure(all(unix, not(feature = "std")), #[inline])] }`)
	require.Equal(t, []string{`#[cfg_attr(all(unix, not(feature = "std")), inline)]`}, attrs)
}

func TestRewriteDocEscapes(t *testing.T) {
	attrs := rewriteAttr(t, `{ #[configure(test, /// say "hi"
)] }`)
	require.Equal(t, []string{`#[cfg_attr(test, doc = " say \"hi\"")]`}, attrs)
}

func TestInnerForm(t *testing.T) {
	tests := []struct {
		name     string
		attr     *PlainAttribute
		expected string
	}{
		{"Bare", &PlainAttribute{Raw: "#[sparkles]"}, "sparkles"},
		{"Args", &PlainAttribute{Raw: "#[derive(Debug, Clone)]"}, "derive(Debug, Clone)"},
		{"KeyValue", &PlainAttribute{Raw: `#[doc = "x"]`}, `doc = "x"`},
		{"DocLine", &PlainAttribute{Doc: true, Raw: "/// text"}, `doc = " text"`},
		{"BlankDocLine", &PlainAttribute{Doc: true, Raw: "///"}, `doc = ""`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.attr.Inner())
		})
	}
}
