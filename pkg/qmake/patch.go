package qmake

import (
	"github.com/sirupsen/logrus"

	"github.com/joshuapare/qmakepatch/internal/image"
	"github.com/joshuapare/qmakepatch/internal/logger"
)

// PatchImage applies the version rewrite and then each variable rewrite, in
// order, stopping at the first error. Rewrites that succeeded before the
// failure stay applied to img.
func PatchImage(img *Image, version string, specs []string) error {
	if err := RewriteVersion(img, version); err != nil {
		return err
	}
	for _, spec := range specs {
		if err := RewriteVariable(img, spec); err != nil {
			return err
		}
	}
	return nil
}

// PatchFile loads the image at path, patches it with PatchImage and writes it
// back. The file is not touched unless every rewrite succeeded.
//
// Example:
//
//	res, err := qmake.PatchFile("qmake", "4.8.4", []string{"qt_prfxpath=/opt/qt4"}, nil)
func PatchFile(path, version string, specs []string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	log := logger.L.WithField("image", path)

	img, err := image.Load(path)
	if err != nil {
		return nil, err
	}
	log.WithField("size", img.Size()).Debug("image loaded")

	if err := PatchImage(img, version, specs); err != nil {
		return nil, err
	}

	res := &Result{Path: path, Size: img.Size(), Version: version, Variables: len(specs)}
	if opts.DryRun {
		log.Info("dry run, image not written")
		return res, nil
	}

	if opts.CreateBackup {
		suffix := opts.BackupSuffix
		if suffix == "" {
			suffix = DefaultBackupSuffix
		}
		backupPath, err := image.Backup(path, suffix)
		if err != nil {
			return nil, err
		}
		res.BackupPath = backupPath
		log.WithField("backup", backupPath).Debug("backup created")
	}

	if err := img.Write(path); err != nil {
		return nil, err
	}
	res.Written = true

	log.WithFields(logrus.Fields{
		"version":   version,
		"variables": len(specs),
	}).Info("image patched")
	return res, nil
}
