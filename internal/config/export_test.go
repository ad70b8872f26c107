package config

import "reflect"

func reflectSettings() reflect.Type { return reflect.TypeOf(Settings{}) }
