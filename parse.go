/*
Copyright 2023 eatmoreapple

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package argz

// Parse walks args once and writes matching options' destinations.
// args[0] is the program path and is skipped.
//
// Each token is compared to the registered names in registration order and
// the first exact match handles it. A flag is set to 1. Any other option
// consumes the following token as its value; when there is no following token
// parsing stops without error. Tokens matching no option are ignored.
//
// A conversion failure is returned at once. Destinations written earlier in
// the same call keep their new values.
func (r *Registry) Parse(args []string) error {
	logger := r.log()
	for i := 1; i < len(args); i++ {
		token := args[i]
		option, ok := r.Lookup(token)
		if !ok {
			logger.Debug("argument ignored", "index", i, "argument", token)
			continue
		}
		if slot, isFlag := option.dest.(flagSlot); isFlag {
			*slot.p = 1
			logger.Debug("flag set", "option", option.Name)
			continue
		}
		i++
		if i >= len(args) {
			logger.Debug("option without value at end of input", "option", option.Name)
			return nil
		}
		if err := assign(option, args[i]); err != nil {
			return err
		}
		logger.Debug("option assigned", "option", option.Name, "value", args[i])
	}
	return nil
}

func assign(option Option, value string) error {
	switch slot := option.dest.(type) {
	case doubleSlot:
		v, ok := parseDoublePrefix(value)
		if !ok {
			return conversionError(option, value)
		}
		*slot.p = v
	case longSlot:
		v, ok := parseLongPrefix(value)
		if !ok {
			return conversionError(option, value)
		}
		*slot.p = v
	case stringSlot:
		*slot.p = value
	default:
		panic("argz: unsupported destination for option '" + option.Name + "'")
	}
	return nil
}

func conversionError(option Option, value string) error {
	return &Error{Op: "parse", Option: option.Name, Value: value, Kind: option.Kind(), Err: ErrConversion}
}
