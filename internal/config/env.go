package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// applyEnvOverrides walks a config section and overwrites every field
// whose `env` tag names a set environment variable. Nested sections are
// walked recursively; untagged fields are left alone. Only the kinds the
// Config carries are supported: strings and ints. Durations live in
// string fields and are parsed where they are consumed, so they need no
// special handling here.
func applyEnvOverrides(section interface{}) error {
	v := reflect.ValueOf(section).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if field.Kind() == reflect.Struct {
			if err := applyEnvOverrides(field.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := t.Field(i).Tag.Get("env")
		if key == "" {
			continue
		}
		raw, ok := os.LookupEnv(key)
		if !ok {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Int:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("env var %s: expected an integer, got %q", key, raw)
			}
			field.SetInt(int64(n))
		default:
			return fmt.Errorf("env var %s: unsupported field kind %s", key, field.Kind())
		}
	}

	return nil
}
