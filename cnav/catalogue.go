/*------------------------------------------------------------------------------
* catalogue.go : GPS CNAV field descriptor catalogue (IS-GPS-200K Appendix III)
*
*          Copyright (C) 2022-2025, All rights reserved.
*
* notes  : bit positions are 1-based, MSB=1, over the 300-bit data page.
*          every field lives here so an ICD revision is a one-file change;
*          the LSB constant sits right next to the slice it scales.
 */
package cnav

import (
	"math"

	"gnsscore/bitfield"
)

// DataPageBits is the fixed width of a CNAV data page.
const DataPageBits = 300

// DataPageBytes is the byte-packed size of a 300-bit page (37.5 bytes,
// rounded up; the last 4 bits of byte 37 are padding).
const DataPageBytes = 38

// Page is a raw 300-bit CNAV data page, MSB first.
type Page [DataPageBytes]byte

// LSB scale factors. Computed once at init rather than declared const
// since Go constants cannot call math.Pow.
var (
	lsb2n9  = math.Pow(2, -9)
	lsb2n21 = math.Pow(2, -21)
	lsb2n44 = math.Pow(2, -44)
	lsb2n57 = math.Pow(2, -57)
	lsb2n32 = math.Pow(2, -32)
	lsb2n34 = math.Pow(2, -34)
	lsb2n30 = math.Pow(2, -30)
	lsb2n8  = math.Pow(2, -8)
	lsb2n35 = math.Pow(2, -35)
	lsb2n48 = math.Pow(2, -48)
	lsb2n60 = math.Pow(2, -60)
	lsb2n27 = math.Pow(2, -27)
	lsb2n24 = math.Pow(2, -24)
	lsb2p11 = math.Pow(2, 11)
	lsb2p14 = math.Pow(2, 14)
	lsb2p16 = math.Pow(2, 16)
	lsb2n51 = math.Pow(2, -51)
	lsb2n68 = math.Pow(2, -68)
)

// Common header, present in every message type.
var (
	cnavPRN     = bitfield.Field{{Start: 9, Length: 6}}
	cnavMsgType = bitfield.Field{{Start: 15, Length: 6}}
	cnavTOW     = bitfield.Field{{Start: 21, Length: 17}}
	cnavAlert   = bitfield.Field{{Start: 38, Length: 1}}
)

const cnavTOWLSB = 6.0 // seconds

// Message type 10 - Ephemeris 1/2.
var (
	cnavWN           = bitfield.Field{{Start: 39, Length: 13}}
	cnavHealth       = bitfield.Field{{Start: 52, Length: 3}}
	cnavTop1         = bitfield.Field{{Start: 55, Length: 11}}
	cnavURA0         = bitfield.Field{{Start: 66, Length: 5}}
	cnavToe1         = bitfield.Field{{Start: 71, Length: 11}}
	cnavDeltaA       = bitfield.Field{{Start: 82, Length: 26}}
	cnavADot         = bitfield.Field{{Start: 108, Length: 25}}
	cnavDeltaN0      = bitfield.Field{{Start: 133, Length: 17}}
	cnavDeltaN0Dot   = bitfield.Field{{Start: 150, Length: 23}}
	cnavM0           = bitfield.Field{{Start: 173, Length: 33}}
	cnavEccentricity = bitfield.Field{{Start: 206, Length: 33}}
	cnavOmega        = bitfield.Field{{Start: 239, Length: 33}}
	cnavIntegrity    = bitfield.Field{{Start: 272, Length: 1}}
	cnavL2CPhasing   = bitfield.Field{{Start: 273, Length: 1}}
)

const (
	cnavTop1LSB = 300.0
	cnavToe1LSB = 300.0
)

var (
	cnavDeltaALSB       = lsb2n9
	cnavADotLSB         = lsb2n21
	cnavDeltaN0LSB      = lsb2n44
	cnavDeltaN0DotLSB   = lsb2n57
	cnavM0LSB           = lsb2n32
	cnavEccentricityLSB = lsb2n34
	cnavOmegaLSB        = lsb2n32
)

// Message type 11 - Ephemeris 2/2.
var (
	cnavToe2          = bitfield.Field{{Start: 39, Length: 11}}
	cnavOmega0        = bitfield.Field{{Start: 50, Length: 33}}
	cnavDeltaOmegaDot = bitfield.Field{{Start: 83, Length: 17}}
	cnavI0            = bitfield.Field{{Start: 100, Length: 33}}
	cnavIDot          = bitfield.Field{{Start: 133, Length: 15}}
	cnavCis           = bitfield.Field{{Start: 148, Length: 16}}
	cnavCic           = bitfield.Field{{Start: 164, Length: 16}}
	cnavCrs           = bitfield.Field{{Start: 180, Length: 24}}
	cnavCrc           = bitfield.Field{{Start: 204, Length: 24}}
	cnavCus           = bitfield.Field{{Start: 228, Length: 21}}
	cnavCuc           = bitfield.Field{{Start: 249, Length: 21}}
)

const cnavToe2LSB = 300.0

var (
	cnavOmega0LSB        = lsb2n32
	cnavDeltaOmegaDotLSB = lsb2n44
	cnavI0LSB            = lsb2n32
	cnavIDotLSB          = lsb2n44
	cnavCisLSB           = lsb2n30
	cnavCicLSB           = lsb2n30
	cnavCrsLSB           = lsb2n8
	cnavCrcLSB           = lsb2n8
	cnavCusLSB           = lsb2n30
	cnavCucLSB           = lsb2n30
)

// Message type 30 - Clock + Iono + group delays.
var (
	cnavToc     = bitfield.Field{{Start: 39, Length: 11}}
	cnavURANED0 = bitfield.Field{{Start: 50, Length: 5}}
	cnavURANED1 = bitfield.Field{{Start: 55, Length: 3}}
	cnavURANED2 = bitfield.Field{{Start: 58, Length: 3}}
	cnavAf0_30  = bitfield.Field{{Start: 61, Length: 26}}
	cnavAf1_30  = bitfield.Field{{Start: 87, Length: 20}}
	cnavAf2_30  = bitfield.Field{{Start: 107, Length: 10}}
	cnavTGD     = bitfield.Field{{Start: 117, Length: 13}}
	cnavISCL1   = bitfield.Field{{Start: 130, Length: 13}}
	cnavISCL2   = bitfield.Field{{Start: 143, Length: 13}}
	cnavISCL5I  = bitfield.Field{{Start: 156, Length: 13}}
	cnavISCL5Q  = bitfield.Field{{Start: 169, Length: 13}}
	cnavAlpha0  = bitfield.Field{{Start: 182, Length: 8}}
	cnavAlpha1  = bitfield.Field{{Start: 190, Length: 8}}
	cnavAlpha2  = bitfield.Field{{Start: 198, Length: 8}}
	cnavAlpha3  = bitfield.Field{{Start: 206, Length: 8}}
	cnavBeta0   = bitfield.Field{{Start: 214, Length: 8}}
	cnavBeta1   = bitfield.Field{{Start: 222, Length: 8}}
	cnavBeta2   = bitfield.Field{{Start: 230, Length: 8}}
	cnavBeta3   = bitfield.Field{{Start: 238, Length: 8}}
)

const cnavTocLSB = 300.0

var (
	cnavAf0LSB_30 = lsb2n35
	cnavAf1LSB_30 = lsb2n48
	cnavAf2LSB_30 = lsb2n60
	cnavTGDLSB    = lsb2n35
	cnavISCLSB    = lsb2n35
	cnavAlpha0LSB = lsb2n30
	cnavAlpha1LSB = lsb2n27
	cnavAlpha2LSB = lsb2n24
	cnavAlpha3LSB = lsb2n24
	cnavBeta0LSB  = lsb2p11
	cnavBeta1LSB  = lsb2p14
	cnavBeta2LSB  = lsb2p16
	cnavBeta3LSB  = lsb2p16
)

// Message type 33 - Clock + UTC. Top and Toc are read unsigned; every UTC
// field from A0 on, including the nominally-unsigned week/day counters, is
// read with the signed reader, as in
// the upstream GNSS-SDR decoder this is grounded on; reproduced here to
// keep the same quirk rather than silently "fixing" it.
var (
	cnavTop1_33   = bitfield.Field{{Start: 39, Length: 11}}
	cnavToc_33    = bitfield.Field{{Start: 50, Length: 11}}
	cnavAf0_33    = bitfield.Field{{Start: 61, Length: 26}}
	cnavAf1_33    = bitfield.Field{{Start: 87, Length: 20}}
	cnavAf2_33    = bitfield.Field{{Start: 107, Length: 10}}
	cnavA0        = bitfield.Field{{Start: 117, Length: 16}}
	cnavA1        = bitfield.Field{{Start: 133, Length: 13}}
	cnavA2        = bitfield.Field{{Start: 146, Length: 7}}
	cnavDeltaTLS  = bitfield.Field{{Start: 153, Length: 8}}
	cnavTOT       = bitfield.Field{{Start: 161, Length: 16}}
	cnavWNT       = bitfield.Field{{Start: 177, Length: 13}}
	cnavWNLSF     = bitfield.Field{{Start: 190, Length: 13}}
	cnavDN        = bitfield.Field{{Start: 203, Length: 4}}
	cnavDeltaTLSF = bitfield.Field{{Start: 207, Length: 8}}
)

const (
	cnavDeltaTLSLSB  = 1.0
	cnavTOTLSB       = 16.0
	cnavWNTLSB       = 1.0
	cnavWNLSFLSB     = 1.0
	cnavDNLSB        = 1.0
	cnavDeltaTLSFLSB = 1.0
)

var (
	cnavA0LSB = lsb2n35
	cnavA1LSB = lsb2n51
	cnavA2LSB = lsb2n68
)

// groupDelaySentinelThreshold is compared against the signed-read value
// before scaling: the 13-bit two's-complement pattern 1000000000000 == -4096,
// and the comparison absorbs floating point rounding from the signed read.
const groupDelaySentinelThreshold = -4095.9
