package entrypointsplicing

import (
	"bytes"
	"fmt"
	"regexp"
	"text/template"
)

var (
	// hostReturnPattern matches the host generator's own closing statement.
	hostReturnPattern = regexp.MustCompile(`(?m)^return (ComposerAutoloaderInit\w+::getLoader\(\));[ \t]*$`)
	// splicedReturnPattern matches the closing statement a previous run of
	// this tool appended, capturing the original host expression inside it.
	splicedReturnPattern = regexp.MustCompile(`(?m)^return ClassAliasLoaderInit\w+::initializeClassAliasLoader\((ComposerAutoloaderInit\w+::getLoader\(\))\);[ \t]*$`)
	// requireLinePattern matches the require statement a previous run added.
	requireLinePattern = regexp.MustCompile(`(?m)^require_once __DIR__ \. '/composer/autoload_alias_loader_real\.php';\n`)
	// suffixPattern recovers the identifier embedded in the host's
	// initializer class name.
	suffixPattern = regexp.MustCompile(`ComposerAutoloaderInit(\w+)::getLoader\(\)`)
)

const initializerTemplate = `<?php

// autoload_alias_loader_real.php @generated by aliasloader

class ClassAliasLoaderInit{{.Suffix}}
{
    private static $loader;

    public static function initializeClassAliasLoader($composerClassLoader)
    {
        if (null !== self::$loader) {
            return self::$loader;
        }
        self::$loader = $composerClassLoader;

        $classAliasMap = require __DIR__ . '/autoload_classaliasmap.php';
        $classAliasLoader = new AliasLoader\ClassAliasLoader($composerClassLoader);
        $classAliasLoader->setAliasMap($classAliasMap);
        $classAliasLoader->setCaseSensitiveClassLoading({{.CaseSensitive}});
        $classAliasLoader->register({{.Prepend}});

        AliasLoader\ClassAliasMap::setClassAliasLoader($classAliasLoader);

        return self::$loader;
    }
}
`

var initializerTmpl = template.Must(template.New("initializer").Parse(initializerTemplate))

func renderInitializer(suffix string, caseSensitive, prepend bool) ([]byte, error) {
	var buf bytes.Buffer
	err := initializerTmpl.Execute(&buf, struct {
		Suffix        string
		CaseSensitive string
		Prepend       string
	}{
		Suffix:        suffix,
		CaseSensitive: phpBool(caseSensitive),
		Prepend:       phpBool(prepend),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render initializer: %w", err)
	}
	return buf.Bytes(), nil
}

func phpBool(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
