package configuration

import "time"

type ChainConfiguration struct {
	Endpoint         string        `yaml:"endpoint"`
	DialTimeout      time.Duration `yaml:"dialTimeout"`
	ReceiptCacheSize int           `yaml:"receiptCacheSize"`
}

func DefChainConfiguration() *ChainConfiguration {
	return &ChainConfiguration{
		Endpoint:         "http://127.0.0.1:8545",
		DialTimeout:      10 * time.Second,
		ReceiptCacheSize: 256,
	}
}
