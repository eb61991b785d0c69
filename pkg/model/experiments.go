package model

import "strings"

// Fractionation experiments of the Sulfolobus solfataricus P2 spectra
// report, in report column order.
var DefaultExperiments = []string{
	"Insoluble_SucroseGradientNoIMV_Aug_24_2008",
	"LMW_10fracSucGradSuperose6_Nov_25_2008",
	"LMW_NoGels_Aug_8_2009",
	"LMW_SucroseGradientNoIMV_Aug_24_2008",
	"LMW_UCSedGFElution4FF_Nov_14_2008",
	"MEM_TEMPRPR9_Jul_30_2008",
	"MEM_UCSedGFElution4FF_Nov_14_2008",
	"MT_SucroseGradientwMemb_Jan_11_2008",
	"MT_Temp2RPR6_Feb_07_2008",
	"Media_Secretion2_April_24_2009",
	"SEC_Secretion1_April_16_2009",
	"SEC_Secretion2_April_24_2009",
	"SEC_Secretion2_Mar_10_2009",
	"SEC_Secretome_July_13_2009",
	"SMW-Anaerobic_DEAE1_Mar_03_2007",
	"SMW-Anaerobic_DEAE2_Mar_03_2007",
	"SMW_45k4hSupernate_Aug_24_2008",
	"SMW_SucroseGradientNoIMV_Aug_24_2008",
	"d-LMW_19fracSucGradSuperose6_Nov_25_2008",
	"d-LMW_2060SucGradwIMV_Jan_11_2008",
	"d-LMW_SucroseGradientNoIMV_Aug_24_2008",
	"d-LMW_SucroseGradient_Aug_24_2008",
	"d-LMW_SucroseGradientwMemb_Jan_11_2008",
	"mwc-LMW_Temp1RPR6_Feb_07_2008",
	"mwc-LMW_Temp2RPR6_Feb_07_2008",
	"s-MEM_SLayer_July_9_2009",
	"therm-LMW_TEMPRPR9_Jul_30_2008",
}

const (
	StagingTable      = "temp"
	FractionsTable    = "peptides_fractions"
	legacyMatrixTable = "peptides_27_experiments"

	PeptideTrackType   = "peptide"
	PeptideTrackPrefix = "peptides: "
	AllFractionsTrack  = PeptideTrackPrefix + "all fractions"
)

func FeatureTableName(experiment string) string {
	return "features_peptides_" + strings.ReplaceAll(experiment, "-", "_")
}

func ExperimentTrackName(experiment string) string {
	return PeptideTrackPrefix + experiment
}
