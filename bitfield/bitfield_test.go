package bitfield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gnsscore/bitfield"
)

// packBits builds a byte slice of width bits from a big-endian bit string
// such as "101100..." for use as test fixture data.
func packBits(t *testing.T, bitstring string) []byte {
	t.Helper()
	n := len(bitstring)
	buf := make([]byte, (n+7)/8)
	for i, c := range bitstring {
		if c == '1' {
			buf[i/8] |= 1 << (7 - uint(i)%8)
		}
	}
	return buf
}

func Test_ReadBool(t *testing.T) {
	data := packBits(t, "10110000")
	blk, err := bitfield.NewBlock(data, 8)
	assert.NoError(t, err)

	v, err := blk.ReadBool(bitfield.Field{{Start: 1, Length: 1}})
	assert.NoError(t, err)
	assert.True(t, v)

	v, err = blk.ReadBool(bitfield.Field{{Start: 2, Length: 1}})
	assert.NoError(t, err)
	assert.False(t, v)

	v, err = blk.ReadBool(bitfield.Field{{Start: 3, Length: 5}}) // length ignored
	assert.NoError(t, err)
	assert.True(t, v)
}

func Test_ReadUnsigned_SingleSlice(t *testing.T) {
	data := packBits(t, "00000110")
	blk, _ := bitfield.NewBlock(data, 8)
	v, err := blk.ReadUnsigned(bitfield.Field{{Start: 1, Length: 8}})
	assert.NoError(t, err)
	assert.Equal(t, uint64(6), v)
}

func Test_ReadUnsigned_MultiSlice_Concatenates_LeftToRight(t *testing.T) {
	// bits 1-4 = 1010, bits 5-8 = 0110; concatenated = 10100110 = 0xA6
	data := packBits(t, "10100110")
	blk, _ := bitfield.NewBlock(data, 8)
	v, err := blk.ReadUnsigned(bitfield.Field{{Start: 1, Length: 4}, {Start: 5, Length: 4}})
	assert.NoError(t, err)
	assert.Equal(t, uint64(0xA6), v)
}

func Test_ReadSigned_PositiveAndNegative(t *testing.T) {
	// 4-bit field, value 0101 = +5
	pos := packBits(t, "01010000")
	blk, _ := bitfield.NewBlock(pos, 8)
	v, err := blk.ReadSigned(bitfield.Field{{Start: 1, Length: 4}})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), v)

	// 4-bit field, value 1011 = -5 in 4-bit two's complement
	neg := packBits(t, "10110000")
	blk2, _ := bitfield.NewBlock(neg, 8)
	v2, err := blk2.ReadSigned(bitfield.Field{{Start: 1, Length: 4}})
	assert.NoError(t, err)
	assert.Equal(t, int64(-5), v2)
}

func Test_ReadSigned_SignExtendsHighBitsToAllOnes(t *testing.T) {
	// 13-bit sentinel pattern 1000000000000 == -4096 in 13-bit two's complement.
	bits := "1000000000000" + "000" // pad to a byte boundary
	data := packBits(t, bits)
	blk, _ := bitfield.NewBlock(data, len(bits))
	v, err := blk.ReadSigned(bitfield.Field{{Start: 1, Length: 13}})
	assert.NoError(t, err)
	assert.Equal(t, int64(-4096), v)
	// bits above the declared length must all be 1 in the 64-bit result.
	assert.Equal(t, int64(-1), v>>13)
}

func Test_ReadSigned_AllZerosIsZero(t *testing.T) {
	data := packBits(t, "00000000")
	blk, _ := bitfield.NewBlock(data, 8)
	v, err := blk.ReadSigned(bitfield.Field{{Start: 1, Length: 8}})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func Test_SliceOutOfRange_IsProtocolLayoutError(t *testing.T) {
	data := packBits(t, "00000000")
	blk, _ := bitfield.NewBlock(data, 8)

	_, err := blk.ReadUnsigned(bitfield.Field{{Start: 5, Length: 8}})
	assert.Error(t, err)
	var layoutErr *bitfield.ProtocolLayoutError
	assert.ErrorAs(t, err, &layoutErr)
}

func Test_FieldWiderThan64Bits_IsProtocolLayoutError(t *testing.T) {
	data := make([]byte, 16)
	blk, _ := bitfield.NewBlock(data, 128)
	_, err := blk.ReadUnsigned(bitfield.Field{{Start: 1, Length: 65}})
	assert.Error(t, err)
}

func Test_NewBlock_RejectsWidthLargerThanBuffer(t *testing.T) {
	_, err := bitfield.NewBlock(make([]byte, 1), 9)
	assert.Error(t, err)
}
