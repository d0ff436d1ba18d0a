package main

import (
	"github.com/joshuapare/qmakepatch/internal/logger"
	"github.com/joshuapare/qmakepatch/pkg/qmake"
)

func runPatch(args []string) error {
	p := &qmake.Profile{}
	if profilePath != "" {
		loaded, err := qmake.LoadProfile(profilePath)
		if err != nil {
			return err
		}
		logger.L.WithField("profile", profilePath).Debug("profile loaded")
		p = loaded
	}
	p = p.Merge(args)
	if err := p.Validate(); err != nil {
		return err
	}

	opts := &qmake.Options{
		CreateBackup: backup || p.Backup,
		BackupSuffix: backupSuffix,
		DryRun:       dryRun,
	}

	printVerbose("Patching %s\n", p.Image)
	res, err := qmake.PatchFile(p.Image, p.Version, p.Variables, opts)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}

	if res.Version != "" {
		printVerbose("  version: %s\n", res.Version)
	}
	for _, spec := range p.Variables {
		printVerbose("  %s\n", spec)
	}
	if res.BackupPath != "" {
		printInfo("Backup written to %s\n", res.BackupPath)
	}
	if !res.Written {
		printInfo("Dry run: %s would be patched (%d bytes)\n", res.Path, res.Size)
		return nil
	}
	printInfo("Patched %s (%d bytes)\n", res.Path, res.Size)
	return nil
}
