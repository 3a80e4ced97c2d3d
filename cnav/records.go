/*------------------------------------------------------------------------------
* records.go : CNAV ephemeris / iono / UTC record types
*
*          Copyright (C) 2022-2025, All rights reserved.
*
* notes  : field names and grouping follow the teacher's Eph-style layout
*          (types.go): short orbital-element names, grouped by purpose,
*          one inline unit comment per field.
 */
package cnav

// Ephemeris is the orbital model of a single satellite, accumulated from
// CNAV pages 10 and 11 and refined by the clock blocks in pages 30/33.
type Ephemeris struct {
	PRN    int /* satellite PRN (1..32) */
	Week   int /* GPS week number */
	TOW    float64
	Health int /* signal health indicator */

	Top  float64 /* data-prediction time (s) */
	URA0 float64 /* user range accuracy index 0 (signed) */
	URA1 float64 /* user range accuracy index 1 (unsigned) */
	URA2 float64 /* user range accuracy index 2 (unsigned) */

	Toe1 float64 /* ephemeris reference time, half 1 (s) */
	Toe2 float64 /* ephemeris reference time, half 2 (s); must equal Toe1 to publish */

	DeltaA     float64 /* semi-major-axis delta (m) */
	ADot       float64 /* semi-major-axis rate (m/s) */
	DeltaN     float64 /* mean-motion delta (semicircles/s) */
	DeltaNDot  float64 /* mean-motion delta rate (semicircles/s^2) */
	M0         float64 /* mean anomaly (semicircles) */
	E          float64 /* eccentricity */
	Omega      float64 /* argument of perigee (semicircles) */
	Omega0     float64 /* ascending node longitude (semicircles) */
	OmegaDot   float64 /* ascending node rate delta (semicircles/s) */
	I0         float64 /* inclination angle (semicircles) */
	IDot       float64 /* inclination rate (semicircles/s) */

	Cis, Cic float64 /* harmonic correction coefficients, inclination (rad) */
	Crs, Crc float64 /* harmonic correction coefficients, radius (m) */
	Cus, Cuc float64 /* harmonic correction coefficients, latitude (rad) */

	Toc float64 /* clock reference time (s) */
	Af0 float64 /* clock bias (s) */
	Af1 float64 /* clock drift (s/s) */
	Af2 float64 /* clock drift rate (s/s^2) */

	TGD    float64 /* group delay (s) */
	ISCL1  float64 /* inter-signal correction L1 C/A (s) */
	ISCL2  float64 /* inter-signal correction L2C (s) */
	ISCL5I float64 /* inter-signal correction L5I (s) */
	ISCL5Q float64 /* inter-signal correction L5Q (s) */

	IntegrityStatus bool /* integrity status flag */
	L2CPhasing      bool /* L2C phasing flag */
	Alert           bool /* alert flag */
}

// Iono holds the eight Klobuchar ionospheric delay coefficients.
type Iono struct {
	Alpha0, Alpha1, Alpha2, Alpha3 float64
	Beta0, Beta1, Beta2, Beta3     float64
}

// UtcModel relates GPS time to UTC, including the leap-second schedule.
type UtcModel struct {
	A0, A1, A2  float64
	DeltaTLS    float64
	TOT         float64
	WNT         int
	WNLSF       int
	DN          int
	DeltaTLSF   float64
	Valid       bool /* set true only by GetUtcModel on read */
}
