/*
 * Copyright (C) 2021 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Supported output format selectors.
const (
	FormatList = "list"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Options struct {
	Input  Input
	Output Output
}

type Input struct {
	// FileName is the file to read from; empty means standard input.
	FileName string
}

type Output struct {
	Format string
}

// Validate normalizes the options and rejects unknown selectors. It runs
// before the engine is invoked, so an unknown output format never wastes a
// reduction pass.
func (o *Options) Validate() error {
	logrus.Debugf("options = %+v", o)

	if o.Output.Format == "" {
		o.Output.Format = FormatList
	}
	o.Output.Format = strings.ToLower(o.Output.Format)

	switch o.Output.Format {
	case FormatList, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format: %s", o.Output.Format)
	}
	return nil
}
