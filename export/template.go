package export

import "html/template"

var mapTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
  <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
  <style>
    html, body, #map { height: 100%; margin: 0; }
    .map-title { position: fixed; top: 10px; left: 50%; transform: translateX(-50%);
                 z-index: 1000; background: rgba(255,255,255,0.9); padding: 6px 14px;
                 border-radius: 4px; font: bold 16px Arial, sans-serif; }
    .legend, .region-legend { background: #fff; padding: 8px 12px; font: 12px Arial, sans-serif;
                              border-radius: 4px; box-shadow: 0 1px 4px rgba(0,0,0,0.3); }
    .legend i { width: 14px; height: 14px; display: inline-block; margin-right: 6px; vertical-align: middle; }
  </style>
</head>
<body>
<div class="map-title">{{.Title}}</div>
<div id="map"></div>
<script>
const geoData = {{.GeoJSON}};
const colors = {{.Colors}};
const values = {{.Values}};

const map = L.map("map").setView([20, 0], 2);
L.tileLayer("https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png", {
  attribution: "&copy; OpenStreetMap contributors &copy; CARTO",
  maxZoom: 10
}).addTo(map);

const choropleth = L.geoJSON(geoData, {
  style: (feature) => ({
    fillColor: colors[feature.properties.name] || "#d9d9d9",
    fillOpacity: 0.7,
    color: "#555",
    weight: 0.5,
    opacity: 0.2
  }),
  onEachFeature: (feature, layer) => {
    const name = feature.properties.name;
    const value = values[name];
    layer.bindTooltip(value === undefined ? name : name + ": " + value.toFixed(1) + " per 100,000");
  }
}).addTo(map);

{{range .Markers}}
L.marker([{{.Lat}}, {{.Lon}}]).addTo(map).bindPopup(
  "<b>Country:</b> {{.Country}}<br>" +
  "<b>Region:</b> {{.Region}}<br>" +
  "<b>TB Prevalence:</b> {{.Prevalence}}<br>" +
  "<b>TB Mortality:</b> {{.Mortality}}<br>" +
  "<b>TB Incidence:</b> {{.Incidence}}"
);
{{end}}

const legend = L.control({position: "bottomright"});
legend.onAdd = () => {
  const div = L.DomUtil.create("div", "legend");
  div.innerHTML = "<b>{{.LegendName}}</b><br>";
  const thresholds = {{.Thresholds}};
  const ramp = {{.Ramp}};
  let lower = 0;
  ramp.forEach((color, i) => {
    const upper = i < thresholds.length ? thresholds[i].toFixed(0) : "+";
    div.innerHTML += '<i style="background:' + color + '"></i>' +
      (i < thresholds.length ? lower + " &ndash; " + upper : lower + "+") + "<br>";
    lower = upper;
  });
  return div;
};
legend.addTo(map);

const regionLegend = L.control({position: "bottomleft"});
regionLegend.onAdd = () => {
  const div = L.DomUtil.create("div", "region-legend");
  div.innerHTML = "<b>WHO Regions</b><br>{{range .Regions}}{{.}}<br>{{end}}";
  return div;
};
regionLegend.addTo(map);
</script>
</body>
</html>
`))
