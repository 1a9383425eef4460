package controller

import "province-exporter/model"

// BuildRecord flattens one province and its districts, keeping API order.
func BuildRecord(province model.Province, districts []model.District) model.Record {
	names := make([]string, 0, len(districts))
	for _, d := range districts {
		names = append(names, *d.Name)
	}
	return model.Record{
		ProvinceId:   province.Id,
		ProvinceName: *province.Name,
		Districts:    names,
	}
}
