// Package sarc decodes SARC archives, the container format Nintendo
// titles use to bundle many named files into one blob.
//
// An archive is four regions, every integer big-endian:
//   - Header ("SARC"): header length, byte-order marker, file size,
//     data region offset, version
//   - File table ("SFAT"): node count, hash multiplier, then one
//     16-byte node per file holding a name hash, attributes and a data
//     range relative to the data region
//   - Name table ("SFNT"): one NUL-terminated UTF-8 name per node, each
//     starting on a 4-byte boundary
//   - Data region: the concatenated file contents
//
// Nodes and names pair by position. Decode parses the three tables;
// Extract checks that they agree in length and slices each file out of
// the data region.
//
// # Quick Start
//
// Open a possibly Yaz0- or zstd-wrapped archive and write its files out:
//
//	f, err := sarc.Open("Pack/Bootup.pack")
//	if err != nil {
//	    return err
//	}
//	stats, err := f.CopyTo("./out")
//
// Or work with the entries in memory:
//
//	entries, err := f.Extract()
//	for _, e := range entries {
//	    fmt.Println(e.Name, len(e.Data))
//	}
package sarc
