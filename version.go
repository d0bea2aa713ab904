// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

// classFileVersionLabels maps a class file's major version number to
// the JDK release name that introduced it, per spec §6. Unlisted major
// versions are not guessed at; callers fall back to displaying the raw
// numeric pair.
var classFileVersionLabels = map[uint16]string{
	45: "Java 1.1",
	46: "Java 1.2",
	47: "Java 1.3",
	48: "Java 1.4",
	49: "Java 5",
	50: "Java 6",
	51: "Java 7",
	52: "Java 8",
	53: "Java 9",
	54: "Java 10",
	55: "Java 11",
	56: "Java 12",
	57: "Java 13",
	58: "Java 14",
	59: "Java 15",
	60: "Java 16",
	61: "Java 17",
	62: "Java 18",
	63: "Java 19",
	64: "Java 20",
	65: "Java 21",
	66: "Java 22",
	67: "Java 23",
}

// VersionLabel returns the human-readable JDK release name for a class
// file's major version. The second return value is false when major
// isn't in the table, in which case the label is empty and the caller
// should display the numeric major/minor pair instead.
func VersionLabel(major uint16) (string, bool) {
	label, ok := classFileVersionLabels[major]
	return label, ok
}
