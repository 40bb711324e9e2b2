package ids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateInterning(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	a := in.Translate("hello")
	b := in.Translate("hello")
	assert.Equal(t, a, b, "equal text must intern to the same uid")

	c := in.Translate("howdy")
	assert.NotEqual(t, a, c, "distinct text must intern to distinct uids")

	assert.Equal(t, UID(0), in.Translate(""), "empty text is always uid 0")
}

func TestTranslateRoundTrip(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	tests := []string{
		"a",
		"hello world",
		"München",
		"日本語テキスト",
		"with\ttabs\nand newlines",
		strings.Repeat("long-", 100),
	}
	for _, text := range tests {
		uid := in.Translate(text)
		assert.Equal(t, text, in.Lookup(uid))
		assert.Equal(t, []byte(text), in.LookupBytes(uid))
	}
}

func TestPeekNeverAllocates(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	in.Translate("known")
	before := in.Len()

	uid, ok := in.Peek("known")
	assert.True(t, ok)
	assert.Equal(t, "known", in.Lookup(uid))

	_, ok = in.Peek("never seen")
	assert.False(t, ok)
	assert.Equal(t, before, in.Len(), "Peek must not create identifiers")

	uid, ok = in.Peek("")
	assert.True(t, ok, "the empty string always exists")
	assert.Equal(t, UID(0), uid)
}

func TestOversizedString(t *testing.T) {
	// 64-byte pages force page churn and an oversized dedicated page.
	in, err := New(WithPagePower(6))
	require.NoError(t, err)
	defer in.Close()

	small := "short"
	big := strings.Repeat("x", 500)
	after := "post-oversized"

	su := in.Translate(small)
	bu := in.Translate(big)
	au := in.Translate(after)

	assert.Equal(t, small, in.Lookup(su))
	assert.Equal(t, big, in.Lookup(bu))
	assert.Equal(t, after, in.Lookup(au))
}

func TestManyStringsAcrossPages(t *testing.T) {
	in, err := New(WithPagePower(6))
	require.NoError(t, err)
	defer in.Close()

	texts := make([]string, 200)
	uids := make([]UID, 200)
	for i := range texts {
		texts[i] = strings.Repeat(string(rune('a'+i%26)), i%20+1)
	}
	for i, text := range texts {
		uids[i] = in.Translate(text)
	}
	for i, text := range texts {
		assert.Equal(t, text, in.Lookup(uids[i]), "string %d must survive page growth", i)
	}
}

func TestAll(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	in.Translate("one")
	in.Translate("two")
	in.Translate("three")

	var got []string
	for id := range in.All() {
		got = append(got, id.String())
	}
	assert.Equal(t, []string{"", "one", "two", "three"}, got)
}

func TestIsolatedInterners(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	defer a.Close()
	b, err := New()
	require.NoError(t, err)
	defer b.Close()

	a.Translate("only in a")
	ub := b.Translate("only in b")

	_, ok := b.Peek("only in a")
	assert.False(t, ok, "interners must not share state")
	assert.Equal(t, UID(1), ub)
}

func TestIDHandles(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	a := in.ID("apple")
	b := in.ID("apple")
	c := in.ID("banana")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "apple", a.String())
	assert.Equal(t, []byte("apple"), a.Bytes())
	assert.Equal(t, 5, a.Len())
	assert.Equal(t, a.UID(), in.FromUID(a.UID()).UID())

	var zero ID
	assert.Equal(t, "", zero.String())
	assert.Nil(t, zero.Bytes())
}

func TestMaybeID(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	in.Translate("present")
	before := in.Len()

	m := in.Maybe("present")
	assert.True(t, m.Exists())
	assert.Equal(t, "present", m.String())
	uid, ok := m.UID()
	assert.True(t, ok)
	assert.Equal(t, "present", in.Lookup(uid))

	missing := in.Maybe("absent")
	assert.False(t, missing.Exists())
	assert.Equal(t, "", missing.String())
	assert.Nil(t, missing.Bytes())
	_, ok = missing.UID()
	assert.False(t, ok)

	assert.Equal(t, before, in.Len(), "Maybe must not create identifiers")
}
