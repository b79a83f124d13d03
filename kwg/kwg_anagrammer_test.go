package kwg

import (
	"sort"
	"testing"

	"github.com/matryer/is"

	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

func anagrams(t *testing.T, k *KWG, letters string, mode string) []string {
	is := is.New(t)
	alph := k.GetAlphabet()
	da := KWGAnagrammer{}
	err := da.InitForString(k, letters)
	is.NoErr(err)

	var out []string
	cb := func(word tilemapping.MachineWord) error {
		out = append(out, word.UserVisible(alph))
		return nil
	}
	switch mode {
	case "exact":
		err = da.Anagram(k, cb)
	case "sub":
		err = da.Subanagram(k, cb)
	case "super":
		err = da.Superanagram(k, cb)
	}
	is.NoErr(err)
	sort.Strings(out)
	return out
}

func TestAnagram(t *testing.T) {
	is := is.New(t)
	k := testKWG(t)
	is.Equal(anagrams(t, k, "BCA", "exact"), []string{"CAB"})
	is.Equal(anagrams(t, k, "SBU", "exact"), []string{"BUS", "SUB"})
	is.Equal(anagrams(t, k, "ZZ", "exact"), []string(nil))
}

func TestAnagramBlanks(t *testing.T) {
	is := is.New(t)
	k := testKWG(t)
	is.Equal(anagrams(t, k, "C?B", "exact"), []string{"CAB", "CUB"})
}

func TestSubanagram(t *testing.T) {
	is := is.New(t)
	k := testKWG(t)
	is.Equal(anagrams(t, k, "SBAC", "sub"), []string{"AB", "BA", "BACS", "CAB", "CABS"})
}

func TestSuperanagram(t *testing.T) {
	is := is.New(t)
	k := testKWG(t)
	is.Equal(anagrams(t, k, "ABACU", "super"), []string{"ABACUS"})
}

func TestIsValidJumble(t *testing.T) {
	is := is.New(t)
	k := testKWG(t)
	da := KWGAnagrammer{}

	v, err := da.IsValidJumble(k, tilemapping.MachineWord{3, 1, 2}) // CAB
	is.NoErr(err)
	is.True(v)

	v, err = da.IsValidJumble(k, tilemapping.MachineWord{3, 3, 3})
	is.NoErr(err)
	is.True(!v)
}
