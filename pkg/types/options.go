package types

// Options are the user's auto-pickup switches and limits. Limits count in
// MassStep and VolumeStep units; zero or less means unlimited.
type Options struct {
	Enabled     bool `koanf:"enabled" toml:"enabled" yaml:"enabled"`
	PickupOwned bool `koanf:"pickup_owned" toml:"pickup_owned" yaml:"pickup_owned"`
	WeightLimit int  `koanf:"weight_limit" toml:"weight_limit" yaml:"weight_limit"`
	VolumeLimit int  `koanf:"volume_limit" toml:"volume_limit" yaml:"volume_limit"`
}

// MaxWeight returns the weight limit, or 0 when unlimited
func (o Options) MaxWeight() Mass {
	if o.WeightLimit <= 0 {
		return 0
	}
	return Mass(o.WeightLimit) * MassStep
}

// MaxVolume returns the volume limit, or 0 when unlimited
func (o Options) MaxVolume() Volume {
	if o.VolumeLimit <= 0 {
		return 0
	}
	return Volume(o.VolumeLimit) * VolumeStep
}

// WithinLimits reports whether it may be picked up on its own. Items that
// weigh nothing or cannot be dropped never are.
func (o Options) WithinLimits(it Item) bool {
	if it.HasFlag(FlagWeightIgnored) || it.HasFlag(FlagNoDrop) {
		return false
	}
	if max := o.MaxVolume(); max > 0 && it.Volume() > max {
		return false
	}
	if max := o.MaxWeight(); max > 0 && it.Weight() > max {
		return false
	}
	return true
}
