// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package codecs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	"golang.org/x/exp/slices"
)

// NewFormattedJSONEncoder returns a json encoder configured for
// pretty-printed output (human-readable)
func NewFormattedJSONEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	enc.SetEscapeHTML(false)
	return enc
}

// LoadObjectFromFile implements the common pattern for loading an instance
// of an object from a json file.
func LoadObjectFromFile(filename string, object interface{}) (err error) {
	f, err := os.Open(filename)
	if err != nil {
		return
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	err = dec.Decode(object)
	return
}

// SaveObjectToFile implements the common pattern for saving an object to a file as json
func SaveObjectToFile(filename string, object interface{}, prettyFormat bool) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	var enc *json.Encoder
	if prettyFormat {
		enc = NewFormattedJSONEncoder(f)
	} else {
		enc = json.NewEncoder(f)
	}
	return enc.Encode(object)
}

// SaveNonDefaultValuesToFile saves a struct to a file as json, but only the
// fields that differ from defaultObject. Fields named in alwaysInclude are
// written regardless.
func SaveNonDefaultValuesToFile(filename string, object, defaultObject interface{}, alwaysInclude []string, prettyFormat bool) error {
	objectValues, err := createValueMap(object)
	if err != nil {
		return err
	}
	defaultValues, err := createValueMap(defaultObject)
	if err != nil {
		return err
	}

	out := make(map[string]interface{}, len(objectValues))
	for name, value := range objectValues {
		if slices.Contains(alwaysInclude, name) || !isDefaultValue(name, objectValues, defaultValues) {
			out[name] = value
		}
	}
	return SaveObjectToFile(filename, out, prettyFormat)
}

func createValueMap(object interface{}) (map[string]interface{}, error) {
	val := reflect.Indirect(reflect.ValueOf(object))
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot map values of %T: not a struct", object)
	}

	valueMap := make(map[string]interface{})
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		valueMap[field.Name] = val.Field(i).Interface()
	}
	return valueMap, nil
}

func isDefaultValue(name string, values, defaults map[string]interface{}) bool {
	val, hasVal := values[name]
	def, hasDef := defaults[name]
	if hasVal != hasDef {
		return false
	}

	return reflect.DeepEqual(val, def)
}
