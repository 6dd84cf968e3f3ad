package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/props"
	"github.com/zoobzio/props/json"
	propstest "github.com/zoobzio/props/testing"
)

func BenchmarkScan_Cached(b *testing.B) {
	_, _ = props.Scan[propstest.StepMeta]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = props.Scan[propstest.StepMeta]()
	}
}

func BenchmarkMapper_Export_Obfuscated(b *testing.B) {
	m, _ := props.NewMapper[propstest.StepMeta]()
	meta := propstest.PopulatedStepMeta()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Export(context.Background(), meta)
	}
}

func BenchmarkMapper_Export_Sealed(b *testing.B) {
	m, _ := props.NewMapper[propstest.ConnectionMeta]()
	m.SetSecretCodec(props.SecretAES, propstest.TestSecretCodec(b))
	meta := propstest.PopulatedConnectionMeta()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Export(context.Background(), meta)
	}
}

func BenchmarkMapper_Import(b *testing.B) {
	m, _ := props.NewMapper[propstest.StepMeta]()
	c, _ := m.Export(context.Background(), propstest.PopulatedStepMeta())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var target propstest.StepMeta
		_ = m.Import(context.Background(), c, &target)
	}
}

func BenchmarkMapper_Marshal_JSON(b *testing.B) {
	m, _ := props.NewMapper[propstest.StepMeta]()
	m.SetCodec(json.New())
	meta := propstest.PopulatedStepMeta()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Marshal(context.Background(), meta)
	}
}

func BenchmarkMapper_Unmarshal_JSON(b *testing.B) {
	m, _ := props.NewMapper[propstest.StepMeta]()
	m.SetCodec(json.New())
	data, _ := m.Marshal(context.Background(), propstest.PopulatedStepMeta())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var target propstest.StepMeta
		_ = m.Unmarshal(context.Background(), data, &target)
	}
}

func BenchmarkMapper_Render(b *testing.B) {
	m, _ := props.NewMapper[propstest.ConnectionMeta]()
	m.SetSecretCodec(props.SecretAES, propstest.TestSecretCodec(b))
	c, _ := m.Export(context.Background(), propstest.PopulatedConnectionMeta())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Render(c)
	}
}
