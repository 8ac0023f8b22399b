/*
 * Copyright (C) 2020-2022, IrineSistiana
 *
 * This file is part of clist.
 *
 * clist is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * clist is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package coremain

import (
	"fmt"

	"github.com/IrineSistiana/clist/pkg/replay"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// LoadScript reads a script from file. If file is empty, "script.*"
// in the current working directory will be used.
func LoadScript(file string) (*replay.Script, string, error) {
	v := viper.New()
	if len(file) > 0 {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("script")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, "", fmt.Errorf("failed to read script file: %w", err)
	}

	s := new(replay.Script)
	if err := v.Unmarshal(s, decoderOpt); err != nil {
		return nil, "", fmt.Errorf("failed to parse script file: %w", err)
	}
	return s, v.ConfigFileUsed(), nil
}

func decoderOpt(cfg *mapstructure.DecoderConfig) {
	cfg.ErrorUnused = true
	cfg.TagName = "yaml"
	cfg.WeaklyTypedInput = true
}
