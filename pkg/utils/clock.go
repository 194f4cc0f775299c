package utils

import (
	"math/rand/v2"
	"time"
)

// Clock 提供墙钟时间，测试中可替换为可控时钟
type Clock interface {
	Now() time.Time
}

// SystemClock 使用 time.Now 的时钟
type SystemClock struct{}

// Now 返回当前时间
func (SystemClock) Now() time.Time {
	return time.Now()
}

// RandomSource 均匀分布的随机数来源，Float64 返回 [0, 1)
type RandomSource interface {
	Float64() float64
}

// NewRandomSource 创建随机数来源
// seed 为 0 时使用随机种子
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
