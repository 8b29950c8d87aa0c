package main

import (
	"os"

	"github.com/odoliveira/aliasloader/internal/adapters/aliasmaploading"
	"github.com/odoliveira/aliasloader/internal/adapters/classmaprewriting"
	"github.com/odoliveira/aliasloader/internal/adapters/consolereporting"
	"github.com/odoliveira/aliasloader/internal/adapters/entrypointsplicing"
	"github.com/odoliveira/aliasloader/internal/adapters/mapemission"
	"github.com/odoliveira/aliasloader/internal/core/ports"
	"github.com/odoliveira/aliasloader/internal/core/services/autoloadrewrite"
	"github.com/odoliveira/aliasloader/internal/core/services/configresolution"
	"github.com/odoliveira/aliasloader/internal/core/services/mapmerging"
	"github.com/odoliveira/aliasloader/internal/handlers/cli"
	"github.com/odoliveira/aliasloader/internal/repositories/composer"
)

// Version is set at build time
var Version = "dev"

func main() {
	reporter := consolereporting.NewReporter()
	resolver := configresolution.NewResolver(reporter)
	loader := aliasmaploading.NewYAMLLoader()
	merger := mapmerging.NewService(resolver, loader, reporter)
	emitter := mapemission.NewEmitter()
	classMapRewriter := classmaprewriting.NewRewriter()
	splicer := entrypointsplicing.NewSplicer()

	pipelineFactory := func(workingDir string) (ports.AutoloadRewriteService, error) {
		repository, err := composer.NewProjectRepository(workingDir)
		if err != nil {
			return nil, err
		}
		return autoloadrewrite.NewService(repository, resolver, merger, emitter, classMapRewriter, splicer, reporter), nil
	}

	mergeFactory := func(workingDir string) (ports.AliasMapMergeService, ports.ProjectRepository, error) {
		repository, err := composer.NewProjectRepository(workingDir)
		if err != nil {
			return nil, nil, err
		}
		return merger, repository, nil
	}

	rootCmd := cli.NewRootCommand(Version, pipelineFactory, mergeFactory)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
