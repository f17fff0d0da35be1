package internal

import "fmt"

// GenerateMdsMatrix builds the dataBits x codeBits generator matrix for poly.
// Row r holds (poly << (dataBits-1)) >> r truncated to codeBits columns, column 0
// being the most significant bit. The result is flattened row major.
func GenerateMdsMatrix(codeBits, dataBits int, poly uint64) []uint8 {
	if codeBits <= 0 || dataBits <= 0 {
		panic(fmt.Sprintf("codeBits (%v) and dataBits (%v) must be >0", codeBits, dataBits))
	}
	matrix := make([]uint8, dataBits*codeBits)
	mask := BitMask(codeBits)
	shifted := poly << uint(dataBits-1)
	for r := 0; r < dataBits; r++ {
		row := (shifted >> uint(r)) & mask
		for c := 0; c < codeBits; c++ {
			matrix[r*codeBits+c] = uint8(row>>uint(codeBits-1-c)) & 1
		}
	}
	return matrix
}

// Multiply treats vector as a dataBits wide column vector (row r pairs with
// bit dataBits-1-r) and returns the GF(2) product with matrix packed MSB first.
func Multiply(matrix []uint8, dataBits int, vector uint64) (code uint64) {
	if dataBits <= 0 || len(matrix)%dataBits != 0 {
		panic(fmt.Sprintf("matrix length (%v) must be divisible by dataBits (%v)", len(matrix), dataBits))
	}
	codeBits := len(matrix) / dataBits

	for c := 0; c < codeBits; c++ {
		var sum uint8
		for r := 0; r < dataBits; r++ {
			sum ^= matrix[r*codeBits+c] & uint8(vector>>uint(dataBits-1-r)) & 1
		}
		code = code<<1 | uint64(sum)
	}
	return
}

// MatrixRow returns row r of the flattened matrix packed MSB first.
func MatrixRow(matrix []uint8, dataBits, r int) (row uint64) {
	codeBits := len(matrix) / dataBits
	for _, b := range matrix[r*codeBits : (r+1)*codeBits] {
		row = row<<1 | uint64(b)
	}
	return
}
