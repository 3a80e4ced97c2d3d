/*------------------------------------------------------------------------------
* decoder.go : GPS CNAV page decoder, record store and publisher
*
*          Copyright (C) 2022-2025, All rights reserved.
*
* notes  : decode_page dispatches on msg_type after reading the common
*          header; each scale multiplication sits next to its read so the
*          LSB constants in catalogue.go double as the field specification.
 */
package cnav

import (
	"fmt"

	"gnsscore/bitfield"
	"gnsscore/telemetry"
)

// UnknownPageTypeError describes a CNAV message type this decoder does not
// know how to parse. DecodePage never constructs or returns it -- such a
// page is simply dropped and counted via telemetry.
type UnknownPageTypeError struct {
	MsgType int
}

func (e *UnknownPageTypeError) Error() string {
	return fmt.Sprintf("cnav: unknown message type %d", e.MsgType)
}

// Decoder accumulates ephemeris, iono and UTC records from a stream of
// 300-bit CNAV pages belonging to one satellite channel. It owns its
// records outright; snapshots returned by Get* are copies.
type Decoder struct {
	ephemeris Ephemeris
	iono      Iono
	utc       UtcModel

	eph1Seen  bool
	eph2Seen  bool
	ionoValid bool
	utcValid  bool

	telemetry telemetry.Sink
}

// NewDecoder returns a Decoder with no telemetry sink installed.
func NewDecoder() *Decoder {
	return &Decoder{telemetry: telemetry.Noop{}}
}

// SetTelemetry installs a telemetry sink. Passing nil restores the no-op
// default; it is never required for correct decoding.
func (d *Decoder) SetTelemetry(sink telemetry.Sink) {
	if sink == nil {
		sink = telemetry.Noop{}
	}
	d.telemetry = sink
}

// Reset clears every freshness flag and zeroes the accumulated records, as
// the upstream Gps_CNAV_Navigation_Message::reset() does.
func (d *Decoder) Reset() {
	d.ephemeris = Ephemeris{}
	d.iono = Iono{}
	d.utc = UtcModel{}
	d.eph1Seen = false
	d.eph2Seen = false
	d.ionoValid = false
	d.utcValid = false
}

// DecodePage ingests one already error-checked 300-bit page. Unrecognized
// message types are silently dropped before any record field is written
// (counted via telemetry, never returned as an error). The only error this can return is a
// *bitfield.ProtocolLayoutError surfaced from a malformed catalogue entry
// -- a programming fault, since the catalogue is a compile-time constant.
func (d *Decoder) DecodePage(page Page) error {
	blk, err := bitfield.NewBlock(page[:], DataPageBits)
	if err != nil {
		return err
	}

	msgType, err := blk.ReadUnsigned(cnavMsgType)
	if err != nil {
		return err
	}
	switch msgType {
	case 10, 11, 30, 33:
	default:
		d.telemetry.IncUnknownPageType()
		return nil
	}

	prn, err := blk.ReadUnsigned(cnavPRN)
	if err != nil {
		return err
	}
	d.ephemeris.PRN = int(prn)

	tow, err := blk.ReadUnsigned(cnavTOW)
	if err != nil {
		return err
	}
	d.ephemeris.TOW = float64(tow) * cnavTOWLSB

	alert, err := blk.ReadBool(cnavAlert)
	if err != nil {
		return err
	}
	d.ephemeris.Alert = alert

	switch msgType {
	case 10:
		return d.decodeType10(blk)
	case 11:
		return d.decodeType11(blk)
	case 30:
		return d.decodeType30(blk)
	case 33:
		return d.decodeType33(blk)
	}
	return nil
}

func (d *Decoder) decodeType10(blk *bitfield.Block) error {
	e := &d.ephemeris

	wn, err := blk.ReadUnsigned(cnavWN)
	if err != nil {
		return err
	}
	e.Week = int(wn)

	health, err := blk.ReadUnsigned(cnavHealth)
	if err != nil {
		return err
	}
	e.Health = int(health)

	top, err := blk.ReadUnsigned(cnavTop1)
	if err != nil {
		return err
	}
	e.Top = float64(top) * cnavTop1LSB

	ura0, err := blk.ReadSigned(cnavURA0)
	if err != nil {
		return err
	}
	e.URA0 = float64(ura0)

	toe1, err := blk.ReadUnsigned(cnavToe1)
	if err != nil {
		return err
	}
	e.Toe1 = float64(toe1) * cnavToe1LSB

	deltaA, err := blk.ReadSigned(cnavDeltaA)
	if err != nil {
		return err
	}
	e.DeltaA = float64(deltaA) * cnavDeltaALSB

	aDot, err := blk.ReadSigned(cnavADot)
	if err != nil {
		return err
	}
	e.ADot = float64(aDot) * cnavADotLSB

	deltaN, err := blk.ReadSigned(cnavDeltaN0)
	if err != nil {
		return err
	}
	e.DeltaN = float64(deltaN) * cnavDeltaN0LSB

	deltaNDot, err := blk.ReadSigned(cnavDeltaN0Dot)
	if err != nil {
		return err
	}
	e.DeltaNDot = float64(deltaNDot) * cnavDeltaN0DotLSB

	m0, err := blk.ReadSigned(cnavM0)
	if err != nil {
		return err
	}
	e.M0 = float64(m0) * cnavM0LSB

	ecc, err := blk.ReadUnsigned(cnavEccentricity)
	if err != nil {
		return err
	}
	e.E = float64(ecc) * cnavEccentricityLSB

	omega, err := blk.ReadSigned(cnavOmega)
	if err != nil {
		return err
	}
	e.Omega = float64(omega) * cnavOmegaLSB

	integrity, err := blk.ReadBool(cnavIntegrity)
	if err != nil {
		return err
	}
	e.IntegrityStatus = integrity

	l2c, err := blk.ReadBool(cnavL2CPhasing)
	if err != nil {
		return err
	}
	e.L2CPhasing = l2c

	d.eph1Seen = true
	return nil
}

func (d *Decoder) decodeType11(blk *bitfield.Block) error {
	e := &d.ephemeris

	toe2, err := blk.ReadUnsigned(cnavToe2)
	if err != nil {
		return err
	}
	e.Toe2 = float64(toe2) * cnavToe2LSB

	omega0, err := blk.ReadSigned(cnavOmega0)
	if err != nil {
		return err
	}
	e.Omega0 = float64(omega0) * cnavOmega0LSB

	deltaOmegaDot, err := blk.ReadSigned(cnavDeltaOmegaDot)
	if err != nil {
		return err
	}
	e.OmegaDot = float64(deltaOmegaDot) * cnavDeltaOmegaDotLSB

	i0, err := blk.ReadSigned(cnavI0)
	if err != nil {
		return err
	}
	e.I0 = float64(i0) * cnavI0LSB

	iDot, err := blk.ReadSigned(cnavIDot)
	if err != nil {
		return err
	}
	e.IDot = float64(iDot) * cnavIDotLSB

	cis, err := blk.ReadSigned(cnavCis)
	if err != nil {
		return err
	}
	e.Cis = float64(cis) * cnavCisLSB

	cic, err := blk.ReadSigned(cnavCic)
	if err != nil {
		return err
	}
	e.Cic = float64(cic) * cnavCicLSB

	crs, err := blk.ReadSigned(cnavCrs)
	if err != nil {
		return err
	}
	e.Crs = float64(crs) * cnavCrsLSB

	crc, err := blk.ReadSigned(cnavCrc)
	if err != nil {
		return err
	}
	e.Crc = float64(crc) * cnavCrcLSB

	cus, err := blk.ReadSigned(cnavCus)
	if err != nil {
		return err
	}
	e.Cus = float64(cus) * cnavCusLSB

	cuc, err := blk.ReadSigned(cnavCuc)
	if err != nil {
		return err
	}
	e.Cuc = float64(cuc) * cnavCucLSB

	d.eph2Seen = true
	return nil
}

// substituteGroupDelaySentinel applies the "not available" sentinel rule:
// the 13-bit two's-complement pattern 1000000000000 (-4096) is replaced
// with 0.0 before the LSB scale is applied.
func substituteGroupDelaySentinel(raw int64) float64 {
	if float64(raw) < groupDelaySentinelThreshold {
		return 0.0
	}
	return float64(raw)
}

func (d *Decoder) decodeType30(blk *bitfield.Block) error {
	e := &d.ephemeris
	i := &d.iono

	toc, err := blk.ReadUnsigned(cnavToc)
	if err != nil {
		return err
	}
	e.Toc = float64(toc) * cnavTocLSB

	ura0, err := blk.ReadSigned(cnavURANED0)
	if err != nil {
		return err
	}
	e.URA0 = float64(ura0)

	ura1, err := blk.ReadUnsigned(cnavURANED1)
	if err != nil {
		return err
	}
	e.URA1 = float64(ura1)

	ura2, err := blk.ReadUnsigned(cnavURANED2)
	if err != nil {
		return err
	}
	e.URA2 = float64(ura2)

	af0, err := blk.ReadSigned(cnavAf0_30)
	if err != nil {
		return err
	}
	e.Af0 = float64(af0) * cnavAf0LSB_30

	af1, err := blk.ReadSigned(cnavAf1_30)
	if err != nil {
		return err
	}
	e.Af1 = float64(af1) * cnavAf1LSB_30

	af2, err := blk.ReadSigned(cnavAf2_30)
	if err != nil {
		return err
	}
	e.Af2 = float64(af2) * cnavAf2LSB_30

	tgd, err := blk.ReadSigned(cnavTGD)
	if err != nil {
		return err
	}
	e.TGD = substituteGroupDelaySentinel(tgd) * cnavTGDLSB

	iscl1, err := blk.ReadSigned(cnavISCL1)
	if err != nil {
		return err
	}
	e.ISCL1 = substituteGroupDelaySentinel(iscl1) * cnavISCLSB

	iscl2, err := blk.ReadSigned(cnavISCL2)
	if err != nil {
		return err
	}
	e.ISCL2 = substituteGroupDelaySentinel(iscl2) * cnavISCLSB

	iscl5i, err := blk.ReadSigned(cnavISCL5I)
	if err != nil {
		return err
	}
	e.ISCL5I = substituteGroupDelaySentinel(iscl5i) * cnavISCLSB

	iscl5q, err := blk.ReadSigned(cnavISCL5Q)
	if err != nil {
		return err
	}
	e.ISCL5Q = substituteGroupDelaySentinel(iscl5q) * cnavISCLSB

	alpha0, err := blk.ReadSigned(cnavAlpha0)
	if err != nil {
		return err
	}
	i.Alpha0 = float64(alpha0) * cnavAlpha0LSB

	alpha1, err := blk.ReadSigned(cnavAlpha1)
	if err != nil {
		return err
	}
	i.Alpha1 = float64(alpha1) * cnavAlpha1LSB

	alpha2, err := blk.ReadSigned(cnavAlpha2)
	if err != nil {
		return err
	}
	i.Alpha2 = float64(alpha2) * cnavAlpha2LSB

	alpha3, err := blk.ReadSigned(cnavAlpha3)
	if err != nil {
		return err
	}
	i.Alpha3 = float64(alpha3) * cnavAlpha3LSB

	beta0, err := blk.ReadSigned(cnavBeta0)
	if err != nil {
		return err
	}
	i.Beta0 = float64(beta0) * cnavBeta0LSB

	beta1, err := blk.ReadSigned(cnavBeta1)
	if err != nil {
		return err
	}
	i.Beta1 = float64(beta1) * cnavBeta1LSB

	beta2, err := blk.ReadSigned(cnavBeta2)
	if err != nil {
		return err
	}
	i.Beta2 = float64(beta2) * cnavBeta2LSB

	beta3, err := blk.ReadSigned(cnavBeta3)
	if err != nil {
		return err
	}
	i.Beta3 = float64(beta3) * cnavBeta3LSB

	d.ionoValid = true
	return nil
}

func (d *Decoder) decodeType33(blk *bitfield.Block) error {
	e := &d.ephemeris
	u := &d.utc

	top, err := blk.ReadUnsigned(cnavTop1_33)
	if err != nil {
		return err
	}
	e.Top = float64(top) * cnavTop1LSB

	toc, err := blk.ReadUnsigned(cnavToc_33)
	if err != nil {
		return err
	}
	e.Toc = float64(toc) * cnavTocLSB

	af0, err := blk.ReadSigned(cnavAf0_33)
	if err != nil {
		return err
	}
	e.Af0 = float64(af0) * cnavAf0LSB_30

	af1, err := blk.ReadSigned(cnavAf1_33)
	if err != nil {
		return err
	}
	e.Af1 = float64(af1) * cnavAf1LSB_30

	af2, err := blk.ReadSigned(cnavAf2_33)
	if err != nil {
		return err
	}
	e.Af2 = float64(af2) * cnavAf2LSB_30

	a0, err := blk.ReadSigned(cnavA0)
	if err != nil {
		return err
	}
	u.A0 = float64(a0) * cnavA0LSB

	a1, err := blk.ReadSigned(cnavA1)
	if err != nil {
		return err
	}
	u.A1 = float64(a1) * cnavA1LSB

	a2, err := blk.ReadSigned(cnavA2)
	if err != nil {
		return err
	}
	u.A2 = float64(a2) * cnavA2LSB

	deltaTLS, err := blk.ReadSigned(cnavDeltaTLS)
	if err != nil {
		return err
	}
	u.DeltaTLS = float64(deltaTLS) * cnavDeltaTLSLSB

	tot, err := blk.ReadSigned(cnavTOT)
	if err != nil {
		return err
	}
	u.TOT = float64(tot) * cnavTOTLSB

	wnt, err := blk.ReadSigned(cnavWNT)
	if err != nil {
		return err
	}
	u.WNT = int(float64(wnt) * cnavWNTLSB)

	wnlsf, err := blk.ReadSigned(cnavWNLSF)
	if err != nil {
		return err
	}
	u.WNLSF = int(float64(wnlsf) * cnavWNLSFLSB)

	dn, err := blk.ReadSigned(cnavDN)
	if err != nil {
		return err
	}
	u.DN = int(float64(dn) * cnavDNLSB)

	deltaTLSF, err := blk.ReadSigned(cnavDeltaTLSF)
	if err != nil {
		return err
	}
	u.DeltaTLSF = float64(deltaTLSF) * cnavDeltaTLSFLSB

	d.utcValid = true
	return nil
}

// HaveNewEphemeris reports whether a logically consistent ephemeris record
// is ready: both halves have been seen and their Toe values match. On a
// true result both freshness flags are cleared. A Toe mismatch leaves the
// flags set -- it is not an error, just an unpublished record waiting for
// a matching pair (spec's CrossPageMismatch).
func (d *Decoder) HaveNewEphemeris() bool {
	if !d.eph1Seen || !d.eph2Seen {
		return false
	}
	if d.ephemeris.Toe1 != d.ephemeris.Toe2 {
		d.telemetry.IncCrossPageMismatch()
		return false
	}
	d.eph1Seen = false
	d.eph2Seen = false
	return true
}

// GetEphemeris returns a snapshot of the currently accumulating ephemeris
// record. The decoder retains the ground truth.
func (d *Decoder) GetEphemeris() Ephemeris {
	return d.ephemeris
}

// HaveNewIono reports and consumes the iono freshness flag.
func (d *Decoder) HaveNewIono() bool {
	if !d.ionoValid {
		return false
	}
	d.ionoValid = false
	return true
}

// GetIono returns a snapshot of the currently accumulating iono record.
func (d *Decoder) GetIono() Iono {
	return d.iono
}

// HaveNewUtcModel reports and consumes the UTC freshness flag.
func (d *Decoder) HaveNewUtcModel() bool {
	if !d.utcValid {
		return false
	}
	d.utcValid = false
	return true
}

// GetUtcModel returns a snapshot of the currently accumulating UTC record,
// with Valid forced true, matching the upstream get_utc_model() contract.
func (d *Decoder) GetUtcModel() UtcModel {
	d.utc.Valid = true
	return d.utc
}
