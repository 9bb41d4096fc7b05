package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.1.0"

	// Modular components
	Benchmark   = "v1.0.1"
	FASTQ_QCSum = "v1.1.0"
	QC_Report   = "v1.0.0"
)
