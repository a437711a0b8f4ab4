package environment

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// ParseEnvTags fills the struct pointed to by cfg from environment variables.
// Fields are matched through their struct tags:
//
//	env:"PORT"           variable name, prefixed with prefix + "_"
//	default:":8080"      value used when the variable is unset or empty
//	required:"true"      fail when the variable is unset and has no default
//	separator:","        element separator for []string fields
func ParseEnvTags(prefix string, cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return errors.New("cfg must be a pointer to a struct")
	}

	v = v.Elem()
	t := v.Type()

	for i := range v.NumField() {
		field := v.Field(i)
		sf := t.Field(i)

		envKey := sf.Tag.Get("env")
		if envKey == "" || !field.CanSet() {
			continue
		}

		key := GetNamespaceEnvKey(prefix, envKey)
		value := os.Getenv(key)
		if value == "" {
			value = sf.Tag.Get("default")
		}
		if value == "" && sf.Tag.Get("required") == "true" {
			return fmt.Errorf("required environment variable %s is not set", key)
		}

		if err := setFieldValue(field, value, sf.Tag.Get("separator")); err != nil {
			return fmt.Errorf("field %s (%s): %w", sf.Name, key, err)
		}
	}

	return nil
}

// setFieldValue converts value to the field's kind. An empty value leaves the
// field at its zero value.
func setFieldValue(field reflect.Value, value, separator string) error {
	if value == "" {
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int32, reflect.Int64:
		if field.Type() == durationType {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("cannot parse duration: %w", err)
			}
			field.SetInt(int64(d))
			return nil
		}
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("cannot parse int: %w", err)
		}
		field.SetInt(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("cannot parse bool: %w", err)
		}
		field.SetBool(b)

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type: %s", field.Type())
		}
		if separator == "" {
			separator = ","
		}
		parts := strings.Split(value, separator)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		field.Set(reflect.ValueOf(out))

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}
