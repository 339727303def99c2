package hashing

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"sha256", SHA256, false},
		{"SHA256", SHA256, false},
		{"sha-256", SHA256, false},
		{"blake3", BLAKE3, false},
		{" Blake3 ", BLAKE3, false},
		{"xxh3", XXH3, false},
		{"md5", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlgorithm_SumLengthMatchesSize(t *testing.T) {
	for _, a := range Algorithms {
		t.Run(a.String(), func(t *testing.T) {
			assert.Len(t, a.Sum([]byte("payload")), a.Size())
		})
	}
}

func TestAlgorithm_KnownAnswers(t *testing.T) {
	tests := []struct {
		name string
		algo Algorithm
		in   string
		want string
	}{
		{"sha256 empty", SHA256, "", "E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855"},
		{"sha256 abc", SHA256, "abc", "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD"},
		{"blake3 empty", BLAKE3, "", "AF1349B9F5F9A1A6A0404DEA36DCC9499BCB25C9ADC112B7CC9A93CAE41F3262"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.algo.Sum([]byte(tt.in)).String())
		})
	}
}

func TestAlgorithm_Deterministic(t *testing.T) {
	data := []byte("same bytes, same name")
	for _, a := range Algorithms {
		assert.Equal(t, a.Sum(data), a.Sum(data), "algorithm %s", a)
		assert.NotEqual(t, a.Sum(data), a.Sum(append(data, '!')), "algorithm %s", a)
	}
}

func TestAlgorithm_SumUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { Algorithm("crc32").Sum(nil) })
	assert.False(t, Algorithm("crc32").Valid())
	assert.Zero(t, Algorithm("crc32").Size())
}

func TestDigest_Format(t *testing.T) {
	d := SHA256.Sum([]byte("abc"))

	assert.Equal(t, "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD", d.Format(EncodingHex))
	assert.Equal(t, "XJ4BNP4PAHH6UQKBIDPF3LRCEOYAGYNDSYLXVHFUCD7WD4QACWWQ", d.Format(EncodingBase32))
}

func TestDigest_FormatEmptyAndUnknown(t *testing.T) {
	assert.Equal(t, "", Digest{}.Format(EncodingBase32))
	assert.Equal(t, "00FF", Digest{0x00, 0xff}.Format(EncodingHex))
	assert.Panics(t, func() { _ = Digest{0x01}.Format(Encoding("base64")) })
}

func TestParseEncoding(t *testing.T) {
	got, err := ParseEncoding("BASE32")
	require.NoError(t, err)
	assert.Equal(t, EncodingBase32, got)

	_, err = ParseEncoding("base64")
	assert.Error(t, err)
}

func TestComputer_Compute(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/hello.txt", []byte("hello world\n"), 0o644))

	c := NewComputer(fs, SHA256)
	d, n, err := c.Compute("/data/hello.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
	assert.Equal(t, "A948904F2F0F479B8F8197694B30184B0D2ED1C1CD2A1EC0FB85D299A192A447", d.String())
}

func TestComputer_ComputeMissingFile(t *testing.T) {
	c := NewComputer(afero.NewMemMapFs(), BLAKE3)
	_, _, err := c.Compute("/nope.bin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nope.bin")
}
