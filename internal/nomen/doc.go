// Package nomen implements the eight-field microscopy filename
// nomenclature used to route image files into the lab archive.
//
// A conforming filename has the shape
//
//	<experiment>_<date+number>_<condition-replicate>_<IHC date>_<labels>_<capture date>_<microscope>_<lens>.<ext>
//
// for example:
//
//	NES-SAI2d15-CS_200514-01_Vehicle-1_200517_DAPI+goPITX3-dk488_200519_CF_10X-z1-1.tiff
//
// The package sanitizes a raw filename, splits it into its eight
// underscore-delimited fields, validates and normalises each field,
// reconstructs the canonical name, and reports every discrepancy it
// found. Validation is best-effort: a malformed field is recorded and
// left as-is, and never stops the remaining fields from being checked.
// Nothing here touches the filesystem; renaming is the caller's
// decision.
//
// All functions are pure and safe for concurrent use.
package nomen
