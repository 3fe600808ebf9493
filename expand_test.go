package cfgattrs_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/attrkit/cfgattrs"
)

func TestExpandIdentity(t *testing.T) {
	// With no configure blocks, expansion is equivalent to removing the
	// wrapper: the attributes reappear byte-identical, in order.
	out, err := cfgattrs.Expand(`{ #[derive(Debug)] /// doc
}`, "struct Foo;")
	require.NoError(t, err)
	require.Equal(t, "#[derive(Debug)]\n/// doc\nstruct Foo;", out)
}

func TestExpandConfigure(t *testing.T) {
	out, err := cfgattrs.Expand(`{
	/// This is an example struct.
	#[configure(
		debug_assertions,
		///
		/// Hello! These are docs that only appear when
		/// debug assertions are active.
	)]
}`, "struct Example;")
	require.NoError(t, err)
	require.Equal(t, `/// This is an example struct.
#[cfg_attr(debug_assertions, doc = "", doc = " Hello! These are docs that only appear when", doc = " debug assertions are active.")]
struct Example;`, out)
}

func TestExpandMixedAttributes(t *testing.T) {
	out, err := cfgattrs.Expand(`{ #[configure(feature = "magic", #[sparkles] #[crackles])] }`, "fn bewitched() {}")
	require.NoError(t, err)
	require.Equal(t, "#[cfg_attr(feature = \"magic\", sparkles, crackles)]\nfn bewitched() {}", out)
}

func TestExpandHoisting(t *testing.T) {
	// Synthesized attributes always precede attributes the item already
	// carried; the item itself is never altered.
	out, err := cfgattrs.Expand(`{ #[configure(test, #[a])] }`, "#[outer]\nstruct Foo;")
	require.NoError(t, err)
	require.Equal(t, "#[cfg_attr(test, a)]\n#[outer]\nstruct Foo;", out)
}

func TestExpandLegacyCallForm(t *testing.T) {
	out, err := cfgattrs.Expand(`(debug_assertions, /// docs
)`, "struct Example;")
	require.NoError(t, err)
	require.Equal(t, "#[cfg_attr(debug_assertions, doc = \" docs\")]\nstruct Example;", out)
}

func TestExpandLegacyBracedCallForm(t *testing.T) {
	out, err := cfgattrs.Expand(`(debug_assertions, {
	///
	/// Hello!
})`, "struct Example;")
	require.NoError(t, err)
	require.Equal(t, "#[cfg_attr(debug_assertions, doc = \"\", doc = \" Hello!\")]\nstruct Example;", out)
}

func TestExpandErrorProducesNoOutput(t *testing.T) {
	out, err := cfgattrs.Expand(`{ #[configure(test #[a])] }`, "struct Foo;")
	require.Error(t, err)
	require.Equal(t, "", out)
}

func TestExpandFilenameInErrors(t *testing.T) {
	e, err := cfgattrs.New(cfgattrs.Filename("example.rs"))
	require.NoError(t, err)
	_, err = e.Expand(`{ junk }`, "struct Foo;")
	require.Error(t, err)
	require.Contains(t, err.Error(), "example.rs")
}

func TestExpandTrace(t *testing.T) {
	var buf bytes.Buffer
	e, err := cfgattrs.New(cfgattrs.Trace(&buf))
	require.NoError(t, err)
	_, err = e.Expand(`{ #[configure(test, #[a])] }`, "struct Foo;")
	require.NoError(t, err)
	require.Contains(t, buf.String(), "ConfigureBlock")
}

func TestParseEntries(t *testing.T) {
	e, err := cfgattrs.New()
	require.NoError(t, err)
	entries, err := e.Parse(`{ #[a] #[configure(test, #[b])] }`)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "#[a]", entries[0].String())
	require.Equal(t, "#[configure(test, #[b])]", entries[1].String())
}
