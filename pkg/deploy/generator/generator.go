package generator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/Azure/ai-gateway-lab/pkg/util/arm"
)

// Generator emits the lab's ARM templates.
type Generator interface {
	Artifacts(dir string) error
	Template(file string) (map[string]interface{}, error)
}

type generator struct{}

func New() Generator {
	return &generator{}
}

func (g *generator) template(file string) (*arm.Template, error) {
	switch file {
	case FileOpenAI:
		return g.openAITemplate(), nil
	case FileStorage:
		return g.storageTemplate(), nil
	case FileSearch:
		return g.searchTemplate(), nil
	case FileGateway:
		return g.gatewayTemplate(), nil
	case FileWorkspace:
		return g.workspaceTemplate(), nil
	case FileRBAC:
		return g.rbacTemplate(), nil
	default:
		return nil, fmt.Errorf("unknown template %q", file)
	}
}

// Template returns the fixed-up template for file, in the form that
// the deployments API accepts.
func (g *generator) Template(file string) (map[string]interface{}, error) {
	t, err := g.template(file)
	if err != nil {
		return nil, err
	}

	b, err := g.templateFixup(t)
	if err != nil {
		return nil, err
	}

	var template map[string]interface{}
	err = json.Unmarshal(b, &template)
	if err != nil {
		return nil, err
	}

	return template, nil
}

// Artifacts writes every template to dir.
func (g *generator) Artifacts(dir string) error {
	for _, file := range Files {
		err := g.writeTemplate(file, dir)
		if err != nil {
			return err
		}
	}

	return nil
}

func (g *generator) writeTemplate(file, dir string) error {
	t, err := g.template(file)
	if err != nil {
		return err
	}

	b, err := g.templateFixup(t)
	if err != nil {
		return err
	}

	return ioutil.WriteFile(filepath.Join(dir, file), b, 0666)
}
