// Package whitebg removes near-white backgrounds from raster images.
//
// A pixel counts as background when its red, green and blue channels all
// strictly exceed a configurable threshold (default 240). Background pixels
// get their alpha channel zeroed; every other byte of the image is left
// untouched. The package works entirely in memory; no network or GPU is
// required.
package whitebg
