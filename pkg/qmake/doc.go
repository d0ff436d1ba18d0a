/*
Package qmake rewrites the configuration strings compiled into a QMake
executable (install paths, the Qt version) without changing the file's size
or layout, and without parsing its executable format.

# Quick Start

Patch a qmake binary in place:

	err := qmake.PatchFile("./bin/qmake", "4.8.4",
	    []string{"qt_prfxpath=/opt/qt4", "qt_libspath=/opt/qt4/lib"}, nil)

# How fields are found

QMake keeps these strings in reserved, zero-padded areas of its own image.
Two anchors locate them:

  - Variables are stored as "name=value" and found by their exact "name="
    leader. The whole spec, leader included, is written back.
  - The version string follows a marker ("beacon") such as "QT_VERSION" and
    its NUL terminator. Which beacons apply depends on the major version; see
    RewriteVersion.

The end of a reserved area is inferred from where the zero padding after the
current value ends. A replacement that does not fit is rejected and the image
is left untouched.

# Failure model

Operations run in order (version, then each variable) and stop at the first
error. PatchFile writes the file back only after every rewrite succeeded, so a
failed run never modifies the file. Errors map to exit codes through
types.CodeOf.
*/
package qmake
