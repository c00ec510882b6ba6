package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// envLookup has the signature of os.LookupEnv
type envLookup func(key string) (string, bool)

var durationType = reflect.TypeOf(time.Duration(0))

// applyEnv overrides the fields of *target that carry an `env` tag with the
// value lookup returns for that key. Nested structs are walked.
func applyEnv(target interface{}, lookup envLookup) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("env target must be a pointer to a struct, got %T", target)
	}
	return applyEnvStruct(v.Elem(), lookup)
}

func applyEnvStruct(v reflect.Value, lookup envLookup) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		fv := v.Field(i)
		if fv.Kind() == reflect.Struct {
			if err := applyEnvStruct(fv, lookup); err != nil {
				return err
			}
			continue
		}

		key := sf.Tag.Get("env")
		if key == "" {
			continue
		}
		raw, ok := lookup(key)
		if !ok {
			continue
		}
		if err := parseEnvValue(fv, strings.TrimSpace(raw)); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func parseEnvValue(fv reflect.Value, raw string) error {
	if fv.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		fv.SetInt(int64(d))
		return nil
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetFloat(f)
	case reflect.Slice:
		if fv.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", fv.Type())
		}
		fv.Set(reflect.ValueOf(splitList(raw)).Convert(fv.Type()))
	default:
		return fmt.Errorf("unsupported field type %s", fv.Type())
	}
	return nil
}

// splitList splits a comma separated value, dropping blank entries.
func splitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
