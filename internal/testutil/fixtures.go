// Package testutil writes JSON document fixtures for package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/EmpoweredVote/insightforge/internal/docstore"
)

// WriteDocuments writes each body under its filename in a fresh temp dir and
// returns the directory.
func WriteDocuments(t testing.TB, docs map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, body := range docs {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// SeoulDocuments returns the default dataset, keyed by filename. Callers may
// delete or replace entries before writing them.
func SeoulDocuments() map[string]string {
	out := make(map[string]string, len(seoulDataset))
	for k, v := range seoulDataset {
		out[k] = v
	}
	return out
}

// SeoulStore writes the default dataset and returns a store over it.
func SeoulStore(t testing.TB) *docstore.Store {
	t.Helper()
	return docstore.New(WriteDocuments(t, SeoulDocuments()), nil)
}

// Totals of the default dataset.
const (
	SeoulPopulation = 28000
	SeoulHousehold  = 12000
	SeoulCompany    = 2500

	JongnoPopulation = 21000
	JongnoHousehold  = 9000
	JongnoCompany    = 2000
	JongnoWorker     = 25000
	JongnoEmdong     = 2
)

var seoulDataset = map[string]string{
	docstore.NationalRegions: `{
  "regions": {
    "11": {
      "sido_name": "서울특별시",
      "sigungu_list": [
        {"sigungu_code": "11110", "sigungu_name": "종로구"},
        {"sigungu_code": "11680", "sigungu_name": "강남구"}
      ]
    },
    "26": {
      "sido_name": "부산광역시",
      "sigungu_list": [
        {"sigungu_code": "26110", "sigungu_name": "중구"}
      ]
    }
  }
}`,

	docstore.ComprehensiveStats: `{
  "metadata": {"source": "SGIS", "year": "2023"},
  "regions": {
    "1111051500": {
      "sido_code": "11", "sido_name": "서울특별시",
      "sigungu_code": "11110", "sigungu_name": "서울특별시 종로구",
      "emdong_name": "청운효자동", "full_address": "서울특별시 종로구 청운효자동",
      "household": {"household_cnt": 5000, "family_member_cnt": 12000, "avg_family_member_cnt": 2.5},
      "house": {"house_cnt": 4000},
      "company": {"corp_cnt": 800, "tot_worker": 5000},
      "x_coord": "953000", "y_coord": "1954000"
    },
    "1111053000": {
      "sido_code": "11", "sido_name": "서울특별시",
      "sigungu_code": "11110", "sigungu_name": "서울특별시 종로구",
      "emdong_name": "사직동", "full_address": "서울특별시 종로구 사직동",
      "household": {"household_cnt": 4000, "family_member_cnt": 9000, "avg_family_member_cnt": 2.25},
      "house": {"house_cnt": 3500},
      "company": {"corp_cnt": 1200, "tot_worker": 20000},
      "x_coord": "953500", "y_coord": "1952500"
    },
    "1168051000": {
      "sido_code": "11", "sido_name": "서울특별시",
      "sigungu_code": "11680", "sigungu_name": "서울특별시 강남구",
      "emdong_name": "신사동", "full_address": "서울특별시 강남구 신사동",
      "household": {"household_cnt": 3000, "family_member_cnt": 7000},
      "company": {"corp_cnt": 500, "tot_worker": 3000}
    },
    "2611051000": {
      "sido_code": "26", "sido_name": "부산광역시",
      "sigungu_code": "26110", "sigungu_name": "부산광역시 중구",
      "emdong_name": "중앙동", "full_address": "부산광역시 중구 중앙동",
      "household": {"household_cnt": 2000, "family_member_cnt": 4000, "avg_family_member_cnt": 2.0},
      "company": {"corp_cnt": 100, "tot_worker": 600}
    },
    "3911051000": {
      "sido_code": "39", "sigungu_code": "39110",
      "emdong_name": "일도1동",
      "household": {"household_cnt": 100, "family_member_cnt": 200},
      "company": {"corp_cnt": 1, "tot_worker": 2}
    }
  }
}`,

	docstore.CommercialStats: `{
  "regions": {
    "11110": {"store_cnt": 1500, "top_category": "음식"}
  }
}`,

	docstore.TechStats: `{
  "sigungu": {
    "11110": {"tech_cnt": 42}
  }
}`,

	docstore.MultiyearStats: `{
  "metadata": {"source": "SGIS", "years": ["2020", "2021", "2022", "2023"]},
  "regions_by_year": {
    "2022": {
      "1111051500": {
        "household": {"household_cnt": 4900, "family_member_cnt": 11800, "avg_family_member_cnt": 2.4},
        "house": {"house_cnt": 3950},
        "company": {"corp_cnt": 790, "tot_worker": 4900}
      }
    },
    "2020": {
      "1111051500": {
        "emdong_name": "청운효자동",
        "household": {"household_cnt": 4800, "family_member_cnt": 11500, "avg_family_member_cnt": 2.4},
        "company": {"corp_cnt": 760}
      }
    },
    "2023": {
      "1111053000": {
        "household": {"household_cnt": 4100, "family_member_cnt": 9100},
        "company": {"corp_cnt": 1210}
      }
    },
    "2021": {
      "1111053000": {
        "household": {"household_cnt": 4050, "family_member_cnt": 9050, "avg_family_member_cnt": 2.2}
      }
    }
  }
}`,

	docstore.EnhancedMultiyear: `{
  "regions_by_year": {
    "2023": {
      "1111051500": {"basic": {"total_population": 15000}, "age_groups": {"0-9": 900}},
      "1168051000": {"basic": {"total_population": 7200}}
    },
    "2021": {
      "1111053000": {"basic": {"total_population": 9900}}
    },
    "2022": {
      "1111051500": {"basic": {"total_population": 0}}
    }
  }
}`,

	docstore.DongElectionMapping: `{
  "청운효자동": {"na_uiwon": "종로구", "si_uiwon": "종로구제1선거구", "gu_uiwon": "종로구가선거구"},
  "사직동": {"na_uiwon": "", "si_uiwon": "종로구제9선거구", "gu_uiwon": ""}
}`,

	docstore.NationalAssembly: `{
  "강남구을": {"name": "박수민\n(朴秀敏)", "party": "국민의힘", "committee": "기획재정위원회"},
  "종로구": {"name": "곽상언\n(郭尙彦)", "party": "더불어민주당", "committee": "행정안전위원회"},
  "강남구갑": {"name": "서명옥", "party": "국민의힘"},
  "중구성동구갑": "malformed"
}`,

	docstore.SeoulCityCouncil: `{
  "종로구": [
    {"name": "윤종복", "party": "국민의힘", "district": "종로구제1선거구"},
    {"name": "김수철\n(金秀哲)", "party": "국민의힘", "district": "종로구제2선거구"},
    "malformed"
  ],
  "중구": [
    {"name": "박중구", "party": "무소속", "district": "종로구제1선거구"}
  ],
  "강남구": [
    {"name": "이강남", "party": "국민의힘", "district": "강남구제1선거구"}
  ]
}`,

	docstore.SeoulDistrictCouncil: `{
  "종로구": [
    {"name": "구의원가", "party": "더불어민주당", "district": "종로구가선거구"},
    {"name": "구의원나", "party": "국민의힘", "district": "종로구나선거구"}
  ],
  "강남구": [
    {"name": "강남희", "party": "무소속", "district": "강남구가선거구"}
  ]
}`,

	docstore.SeoulMayor: `{"name": "오세훈\n(吳世勳)", "party": "국민의힘"}`,

	docstore.SeoulDistrictHeads: `{
  "종로구": {"name": "정문헌\n(鄭文憲)", "party": "국민의힘"},
  "강남구": {"name": "조성명(趙成明) ", "party": "국민의힘"}
}`,

	docstore.SeoulComprehensive: `{
  "metadata": {"source": "서울 열린데이터광장"},
  "regions": {
    "11110": {
      "sido_name": "서울특별시", "sigungu_name": "종로구", "dong_name": "",
      "population_data": {"total_population": 139417, "total_avg_age": 46.2, "population_density": 5834.1}
    },
    "1111051500": {
      "sigungu_name": "종로구", "dong_name": "청운효자동",
      "population_data": {"total_population": 11200, "total_avg_age": 47.5, "population_density": 4100}
    },
    "11680": {
      "sido_name": "서울특별시", "sigungu_name": "강남구", "dong_name": "",
      "population_data": {"total_population": 531000, "total_avg_age": 42.3, "population_density": 13400}
    },
    "1168051000": {
      "sigungu_name": "강남구", "dong_name": "신사동",
      "population_data": {"total_population": 15000}
    }
  }
}`,

	docstore.SeoulGDP: `{
  "종로구": {"grdp": 58000000, "unit": "백만원"}
}`,

	docstore.SeoulTraffic: `{
  "종로구": {"subway_stations": 17}
}`,

	docstore.SeoulSafety: `{
  "강남구": {"cctv": 7000}
}`,

	docstore.AssemblyByRegion: `{
  "regional": {
    "서울": [
      {"name": "곽상언", "district": "종로구", "party": "더불어민주당"},
      {"name": "강남일", "district": "강남구병", "party": "국민의힘"}
    ],
    "부산": [
      {"name": "조경태", "district": "사하구을", "party": "국민의힘"}
    ]
  },
  "proportional": {
    "국민의힘": [{"name": "강선영"}],
    "더불어민주당": [{"name": "위성락"}, {"name": "박선원"}]
  }
}`,

	docstore.AssemblyNetwork: `{
  "issues": {"부동산": {"weight": 12}, "교육": {"weight": 4}},
  "connections": [{"source": "곽상언", "target": "부동산"}, {"source": "강남일", "target": "부동산"}, {"source": "강남일", "target": "교육"}],
  "member_connections": [{"source": "곽상언", "target": "강남일", "shared": 1}],
  "clusters": [{"id": 0, "members": ["곽상언", "강남일"]}],
  "member_to_cluster": {"곽상언": 0, "강남일": 0},
  "connection_stats": {"density": 0.25}
}`,

	docstore.IssueArticles: `{
  "부동산": {"articles": [{"title": "전세 대책", "date": "2024-05-01"}], "total": 1}
}`,

	docstore.AssemblyLDA: `{
  "곽상언": {"topics": [{"id": 0, "words": ["부동산", "교통"]}]}
}`,

	docstore.LocalPoliticiansLDA: `{
  "윤종복": {"topics": [{"id": 1, "words": ["교육"]}]}
}`,
}
