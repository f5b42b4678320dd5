package docstore

import "github.com/EmpoweredVote/insightforge/internal/partial"

// Logical document names. Each doubles as the default filename under the
// data directory; config can point a name at a different file.
const (
	NationalRegions      = "sgis_national_regions.json"
	ComprehensiveStats   = "sgis_comprehensive_stats.json"
	CommercialStats      = "sgis_commercial_stats.json"
	TechStats            = "sgis_tech_stats.json"
	MultiyearStats       = "sgis_multiyear_stats.json"
	EnhancedMultiyear    = "sgis_enhanced_multiyear_stats.json"
	DongElectionMapping  = "dong_election_mapping_complete.json"
	NationalAssembly     = "national_assembly_22nd_real.json"
	SeoulCityCouncil     = "seoul_si_uiwon_8th_real.json"
	SeoulDistrictCouncil = "seoul_gu_uiwon_8th_real.json"
	SeoulMayor           = "seoul_mayor_8th_real.json"
	SeoulDistrictHeads   = "seoul_gu_mayor_8th.json"
	SeoulComprehensive   = "seoul_comprehensive_data.json"
	SeoulGDP             = "seoul_gdp_data.json"
	SeoulTraffic         = "seoul_traffic_data.json"
	SeoulSafety          = "seoul_safety_data.json"
	AssemblyByRegion     = "assembly_by_region.json"
	AssemblyNetwork      = "assembly_network_graph.json"
	IssueArticles        = "issue_articles_tracking.json"
	AssemblyLDA          = "assembly_member_lda_analysis.json"
	LocalPoliticiansLDA  = "local_politicians_lda_analysis.json"
)

// Source is the read side of Store used by the resolvers.
type Source interface {
	Object(name string) (*partial.Object, error)
}
